package inks

import "go.uber.org/zap"

// SetDebug routes tree sanity warnings for trees rooted at a node bound to
// r, such as a scene stage, to log. A nil logger turns the checks off.
func (r *Registry) SetDebug(log *zap.Logger) {
	r.debugLog = log
}

// DebugLogger returns the logger set with SetDebug, or nil when the checks
// are off.
func (r *Registry) DebugLogger() *zap.Logger {
	return r.debugLog
}

// debugLogger returns the debug logger of the registry bound to n's root,
// or nil.
func debugLogger(n *Node) *zap.Logger {
	root := n
	for root.Parent != nil {
		root = root.Parent
	}
	if root.registry == nil {
		return nil
	}
	return root.registry.debugLog
}

const debugMaxTreeDepth = 32

// debugCheckTreeDepth warns if n sits deeper than debugMaxTreeDepth.
func debugCheckTreeDepth(log *zap.Logger, n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		log.Warn("tree depth exceeds threshold",
			zap.String("node", n.Name),
			zap.Int("depth", depth),
			zap.Int("threshold", debugMaxTreeDepth))
	}
}

const debugMaxChildCount = 1000

// debugCheckChildCount warns if n has more than debugMaxChildCount children.
func debugCheckChildCount(log *zap.Logger, n *Node) {
	if len(n.children) > debugMaxChildCount {
		log.Warn("child count exceeds threshold",
			zap.String("node", n.Name),
			zap.Int("children", len(n.children)),
			zap.Int("threshold", debugMaxChildCount))
	}
}
