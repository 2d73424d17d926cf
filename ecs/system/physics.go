package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/groundskeeper/common"
	"github.com/milk9111/groundskeeper/ecs"
	"github.com/milk9111/groundskeeper/ecs/component"
)

const (
	collisionTypeActor cp.CollisionType = iota + 1
	collisionTypeSolid
)

const (
	categoryActor uint = 1 << iota
	categorySolid
)

// solidFilter matches wall shapes only.
var solidFilter = cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, categorySolid)

const defaultBodySize = 32.0

// PhysicsSystem resolves actor movement against static colliders. Actors are
// kinematic: MovementSystem has already written where they want to be, and
// this system queries the space for walls at that spot and pulls them back
// out, one axis at a time, before stepping the space by the resolved delta.
type PhysicsSystem struct {
	space *cp.Space

	entities map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	halfW  float64
	halfH  float64
	static bool
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:    newSpace(),
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.space = newSpace()
	}
	if ps.entities == nil {
		ps.entities = make(map[ecs.Entity]*bodyInfo)
	}

	ps.syncEntities(w)
	ps.resolve(w)

	ps.space.Step(1.0)

	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	for _, e := range w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		if _, ok := ps.entities[e]; ok {
			continue
		}
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}
		transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())

		// A new actor starts where it stood before this frame's movement.
		startX, startY := transform.X, transform.Y
		if walker, ok := ecs.Get(w, e, component.WalkerComponent.Kind()); ok {
			startX, startY = walker.PrevX, walker.PrevY
		}

		info := ps.createBodyInfo(startX, startY, bodyComp)
		ps.entities[e] = info
		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
	}
}

func (ps *PhysicsSystem) createBodyInfo(x, y float64, bodyComp *component.PhysicsBody) *bodyInfo {
	width, height := bodyComp.Width, bodyComp.Height
	if width <= 0 || height <= 0 {
		width, height = defaultBodySize, defaultBodySize
	}

	info := &bodyInfo{
		halfW:  width / 2,
		halfH:  height / 2,
		static: bodyComp.Static,
	}

	if bodyComp.Static {
		bb := cp.NewBBForExtents(cp.Vector{X: x, Y: y}, info.halfW, info.halfH)
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetCollisionType(collisionTypeSolid)
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, categorySolid, cp.ALL_CATEGORIES))
		ps.space.AddShape(shape)

		info.body = ps.space.StaticBody
		info.shape = shape
		return info
	}

	body := cp.NewKinematicBody()
	body.SetPosition(cp.Vector{X: x, Y: y})

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetCollisionType(collisionTypeActor)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, categoryActor, cp.ALL_CATEGORIES))

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	info.body = body
	info.shape = shape
	return info
}

// resolve turns each actor's desired transform into a body velocity that
// stops at the first wall on each axis.
func (ps *PhysicsSystem) resolve(w *ecs.World) {
	var bounds *component.LevelBounds
	if e, ok := w.First(component.LevelBoundsComponent.Kind()); ok {
		bounds, _ = ecs.Get(w, e, component.LevelBoundsComponent.Kind())
	}

	for e, info := range ps.entities {
		if info.static {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		start := info.body.Position()
		x := ps.sweepX(info, start.X, start.Y, transform.X)
		y := ps.sweepY(info, x, start.Y, transform.Y)
		if bounds != nil {
			x, y = clampToBounds(info, x, y, bounds)
		}

		info.body.SetVelocity(x-start.X, y-start.Y)
	}
}

// sweepX moves to toX unless a wall overlaps the box there, in which case it
// stops flush against the nearest blocking edge.
func (ps *PhysicsSystem) sweepX(info *bodyInfo, fromX, y, toX float64) float64 {
	dx := toX - fromX
	if dx == 0 {
		return fromX
	}
	x := toX
	for _, wall := range ps.solidsAt(cp.NewBBForExtents(cp.Vector{X: toX, Y: y}, info.halfW, info.halfH)) {
		if dx > 0 {
			x = math.Min(x, wall.L-info.halfW)
		} else {
			x = math.Max(x, wall.R+info.halfW)
		}
	}
	return x
}

func (ps *PhysicsSystem) sweepY(info *bodyInfo, x, fromY, toY float64) float64 {
	dy := toY - fromY
	if dy == 0 {
		return fromY
	}
	y := toY
	for _, wall := range ps.solidsAt(cp.NewBBForExtents(cp.Vector{X: x, Y: toY}, info.halfW, info.halfH)) {
		if dy > 0 {
			y = math.Min(y, wall.B-info.halfH)
		} else {
			y = math.Max(y, wall.T+info.halfH)
		}
	}
	return y
}

// solidsAt asks the space for the wall boxes that strictly overlap bb.
func (ps *PhysicsSystem) solidsAt(bb cp.BB) []cp.BB {
	var walls []cp.BB
	ps.space.BBQuery(bb, solidFilter, func(shape *cp.Shape, _ interface{}) {
		if wall := shape.BB(); overlaps(bb, wall) {
			walls = append(walls, wall)
		}
	}, nil)
	return walls
}

func clampToBounds(info *bodyInfo, x, y float64, bounds *component.LevelBounds) (float64, float64) {
	if bounds.Width > 0 {
		x = common.Clamp(x, info.halfW, bounds.Width-info.halfW)
	}
	if bounds.Height > 0 {
		y = common.Clamp(y, info.halfH, bounds.Height-info.halfH)
	}
	return x, y
}

// overlaps is a strict intersection test. BBQuery reports touching edges too,
// which would stop an actor sliding along a wall.
func overlaps(a, b cp.BB) bool {
	return a.L < b.R && b.L < a.R && a.B < b.T && b.B < a.T
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		info.body.SetVelocity(0, 0)
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}
