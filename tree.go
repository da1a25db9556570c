package rope

// tree.go holds the node-level structural primitives — insert, split,
// concat — ported from the original C rope's node_insert_bytes,
// node_split_recursive and rope_concat. Every function here consumes the
// node(s) passed to it: pointers may be recycled into pool or spliced into
// the returned structure, and callers must not touch the input afterwards.

// insertBytes inserts data at byte offset pos within the subtree rooted at
// n, returning the new (possibly rebalanced) subtree root. n must be
// non-nil; the empty-rope case is handled by the Rope façade.
func (p *Pool) insertBytes(n *node, pos int, data []byte) *node {
	if n.isLeaf {
		switch {
		case pos <= 0:
			leaf := p.newLeaf(data)
			return balance(p.newBranch(leaf, n))
		case pos >= n.byteLen:
			leaf := p.newLeaf(data)
			return balance(p.newBranch(n, leaf))
		default:
			left := p.newLeaf(n.data[:pos])
			mid := p.newLeaf(data)
			right := p.newLeaf(n.data[pos:n.byteLen])
			n.data = nil
			p.release(n)
			leftBranch := p.newBranch(left, mid)
			return balance(p.newBranch(leftBranch, right))
		}
	}

	if pos <= n.leftBytes {
		n.left = p.insertBytes(n.left, pos, data)
	} else {
		n.right = p.insertBytes(n.right, pos-n.leftBytes, data)
	}
	updateWeights(n)
	return balance(n)
}

// splitLeaf splits a leaf at byte offset pos, retiring the original leaf
// unless pos lands exactly on one of its ends (in which case the leaf is
// reused unmodified on the side it belongs to).
func (p *Pool) splitLeaf(n *node, pos int) (*node, *node) {
	switch {
	case pos <= 0:
		return nil, n
	case pos >= n.byteLen:
		return n, nil
	default:
		left := p.newLeaf(n.data[:pos])
		right := p.newLeaf(n.data[pos:n.byteLen])
		setColor(left, n.clr)
		setColor(right, n.clr)
		n.data = nil
		p.release(n)
		return left, right
	}
}

// splitNode splits the subtree rooted at n at byte offset pos into two
// subtrees, consuming n. Either result may be nil (an empty side).
// Transient imbalance in the reassembled fragments is acceptable per spec —
// split doubles as delete's inner mechanism and the wrapping rope handles
// reblacken the roots it returns to callers.
func (p *Pool) splitNode(n *node, pos int) (*node, *node) {
	if n == nil {
		return nil, nil
	}
	if n.isLeaf {
		return p.splitLeaf(n, pos)
	}

	if pos <= n.leftBytes {
		ll, lr := p.splitNode(n.left, pos)
		var right *node
		if lr != nil && n.right != nil {
			right = p.newBranch(lr, n.right)
			right.clr = n.clr
		} else if lr != nil {
			right = lr
		} else {
			right = n.right
		}
		p.release(n)
		return ll, right
	}

	rl, rr := p.splitNode(n.right, pos-n.leftBytes)
	var left *node
	if rl != nil && n.left != nil {
		left = p.newBranch(n.left, rl)
		left.clr = n.clr
	} else if rl != nil {
		left = rl
	} else {
		left = n.left
	}
	p.release(n)
	return left, rr
}

// concatNodes joins two non-nil subtrees into a single BLACK branch. Callers
// are responsible for the empty-input short circuits (see Concat in ops.go);
// this function always allocates a fresh branch.
func (p *Pool) concatNodes(left, right *node) *node {
	n := p.newBranch(left, right)
	n.clr = black
	return n
}
