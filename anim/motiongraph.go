package anim

// MotionEvent names a point in a MotionState's timeline where MotionGraph
// should call the graph's event sink, e.g. "footstep_left" at t=0.3s.
type MotionEvent struct {
	Name string
	Time float64
}

// MotionState is one node of the graph: a blend tree sampled against a
// playback clock, plus the timed events that fire while it plays.
type MotionState struct {
	Name   string
	Tree   BlendTreeNode
	Events []MotionEvent
}

// MotionGraph drives a skeleton through a sequence of MotionStates,
// cross-fading between them over an explicit transition duration rather
// than snapping instantly, and firing timeline events as playback crosses
// them.
type MotionGraph struct {
	Parents []int32
	States  []MotionState

	motionIndex int
	time        float64
	param       float64

	transitioning      bool
	previousPose       *SkeletonPose
	transitionElapsed  float64
	transitionDuration float64

	onEvent func(name string)
}

// NewMotionGraph builds a graph over the given skeleton topology and
// states, starting at state 0.
func NewMotionGraph(parents []int32, states []MotionState) *MotionGraph {
	return &MotionGraph{Parents: parents, States: states}
}

// OnEvent registers the sink called whenever a MotionEvent's time boundary
// is crossed during Update.
func (g *MotionGraph) OnEvent(fn func(name string)) { g.onEvent = fn }

// SetBlendParam sets the value fed to the active state's blend tree.
func (g *MotionGraph) SetBlendParam(param float64) { g.param = param }

// MotionIndex returns the currently active state's index.
func (g *MotionGraph) MotionIndex() int { return g.motionIndex }

// TransitionTo begins cross-fading from the current state to to over
// duration seconds. The pose at the instant of the call is frozen and
// blended against the new state's freshly sampled pose until the
// transition timer elapses. Calling this while already transitioning
// discards the in-flight transition and starts a fresh one from the
// current blended pose.
func (g *MotionGraph) TransitionTo(to int, duration float64) {
	if to < 0 || to >= len(g.States) {
		return
	}
	prev := g.currentPose()
	if g.transitioning && g.previousPose != nil && g.transitionDuration > 0 {
		prev = g.previousPose.Lerp(prev, g.transitionElapsed/g.transitionDuration)
	}
	g.previousPose = prev
	g.motionIndex = to
	g.time = 0
	g.transitioning = duration > 0
	g.transitionElapsed = 0
	g.transitionDuration = duration
}

func (g *MotionGraph) currentPose() *SkeletonPose {
	state := g.States[g.motionIndex]
	if state.Tree == nil {
		return NewSkeletonPose(g.Parents)
	}
	return state.Tree.Sample(g.time, g.param, g.Parents)
}

// Update advances playback by dt, fires any timeline events crossed, and
// returns the resulting pose: either the active state's pose directly, or
// a lerp between the frozen previous pose and the active state's pose
// while a transition is still in flight.
func (g *MotionGraph) Update(dt float64) *SkeletonPose {
	prevTime := g.time
	g.time += dt
	g.fireEvents(prevTime, g.time)

	pose := g.currentPose()
	if !g.transitioning {
		return pose
	}

	g.transitionElapsed += dt
	if g.transitionDuration <= 0 || g.transitionElapsed >= g.transitionDuration {
		g.transitioning = false
		g.previousPose = nil
		return pose
	}
	factor := g.transitionElapsed / g.transitionDuration
	return g.previousPose.Lerp(pose, factor)
}

// fireEvents calls the sink for every event in the active state whose Time
// falls in (from, to], i.e. was just crossed by this Update's advance.
func (g *MotionGraph) fireEvents(from, to float64) {
	if g.onEvent == nil {
		return
	}
	for _, ev := range g.States[g.motionIndex].Events {
		if ev.Time > from && ev.Time <= to {
			g.onEvent(ev.Name)
		}
	}
}
