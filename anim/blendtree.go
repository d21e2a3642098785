package anim

import (
	"fmt"
	"sort"

	"github.com/kwcore/engine/resource"
)

// BlendTreeNode evaluates to a SkeletonPose given a playback time and a
// blend parameter value. Leaf nodes (AnimationNode) ignore param; inner
// nodes (LerpNode) use it to pick and blend between child subtrees.
type BlendTreeNode interface {
	Sample(t, param float64, parents []int32) *SkeletonPose
}

// AnimationNode is a blend-tree leaf that samples a single Animation
// resource at time t. If the handle hasn't finished loading yet, Sample
// returns an identity pose rather than blocking, per spec §4.5.
type AnimationNode struct {
	Anim *resource.Handle[*Animation]
}

// Sample implements BlendTreeNode.
func (n *AnimationNode) Sample(t, param float64, parents []int32) *SkeletonPose {
	pose := NewSkeletonPose(parents)
	if n.Anim == nil || !n.Anim.IsLoaded() || n.Anim.Err() != nil {
		return pose
	}
	a := *n.Anim.Get()
	if a == nil {
		return pose
	}
	for i := range parents {
		pose.SetJointSpaceTransform(i, a.SampleJoint(i, t))
	}
	return pose
}

// lerpChild pairs a blend-parameter key with the subtree active at it.
type lerpChild struct {
	key  float64
	node BlendTreeNode
}

// LerpNode blends between child subtrees keyed by ascending blend-parameter
// value. A param at or beyond either end clamps to that end's subtree; a
// param between two keys blends linearly between them.
type LerpNode struct {
	children []lerpChild
}

// NewLerpNode builds a LerpNode from key->node pairs, sorting by key. It
// returns an error if two entries share a key, since the blend between a
// key and itself is undefined.
func NewLerpNode(keys []float64, nodes []BlendTreeNode) (*LerpNode, error) {
	if len(keys) != len(nodes) {
		return nil, fmt.Errorf("anim: lerp node needs equal-length keys and nodes, got %d and %d", len(keys), len(nodes))
	}
	children := make([]lerpChild, len(keys))
	for i := range keys {
		children[i] = lerpChild{key: keys[i], node: nodes[i]}
	}
	sort.Slice(children, func(i, j int) bool { return children[i].key < children[j].key })
	for i := 1; i < len(children); i++ {
		if children[i].key == children[i-1].key {
			return nil, fmt.Errorf("anim: lerp node has duplicate key %g", children[i].key)
		}
	}
	return &LerpNode{children: children}, nil
}

// Sample implements BlendTreeNode.
func (n *LerpNode) Sample(t, param float64, parents []int32) *SkeletonPose {
	if len(n.children) == 0 {
		return NewSkeletonPose(parents)
	}
	if param <= n.children[0].key {
		return n.children[0].node.Sample(t, param, parents)
	}
	last := n.children[len(n.children)-1]
	if param >= last.key {
		return last.node.Sample(t, param, parents)
	}
	for i := 1; i < len(n.children); i++ {
		if param > n.children[i].key {
			continue
		}
		prev, next := n.children[i-1], n.children[i]
		factor := (param - prev.key) / (next.key - prev.key)
		a := prev.node.Sample(t, param, parents)
		b := next.node.Sample(t, param, parents)
		return a.Lerp(b, factor)
	}
	return last.node.Sample(t, param, parents)
}
