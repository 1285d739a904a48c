package ecs

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilan-segal/platform-fighter/internal/application/state"
	"github.com/ilan-segal/platform-fighter/internal/geom"
)

func testPlayerSpec() PlayerSpec {
	return PlayerSpec{Spawn: geom.V(0, 200), Gravity: 100, FallSpeed: 400}
}

func TestNewWorld(t *testing.T) {
	w := NewWorld()

	assert.NotNil(t, w)
	assert.Equal(t, EntityID(1), w.nextID)
	assert.NotNil(t, w.Position)
	assert.NotNil(t, w.Velocity)
	assert.NotNil(t, w.Collider)
	assert.NotNil(t, w.Motion)
	assert.NotNil(t, w.IsPlayer)
	assert.Equal(t, FrameCounter(0), w.Frame)
}

func TestNewEntity(t *testing.T) {
	w := NewWorld()

	id1 := w.NewEntity()
	id2 := w.NewEntity()
	id3 := w.NewEntity()

	assert.Equal(t, EntityID(1), id1)
	assert.Equal(t, EntityID(2), id2)
	assert.Equal(t, EntityID(3), id3)
	assert.Equal(t, EntityID(4), w.nextID)
}

func TestEntityIDNeverRecycled(t *testing.T) {
	w := NewWorld()

	id1 := w.NewEntity()
	w.Position[id1] = Position{geom.V(100, 200)}

	w.DestroyEntity(id1)

	id2 := w.NewEntity()
	assert.NotEqual(t, id1, id2, "Entity IDs should never be recycled")
	assert.Equal(t, EntityID(2), id2)
}

func TestCreatePlayer(t *testing.T) {
	w := NewWorld()

	id := w.CreatePlayer(testPlayerSpec(), state.Hooks{})

	assert.Equal(t, id, w.PlayerID)
	assert.True(t, w.Exists(id))
	assert.Equal(t, geom.V(0, 200), w.GetPlayerPosition().Vec2)
	assert.Equal(t, Velocity{}, w.Velocity[id])
	assert.Equal(t, Gravity(100), w.Gravity[id])
	assert.Equal(t, FallSpeed(400), w.FallSpeed[id])
	assert.Equal(t, Transform{X: 0, Y: 200}, w.Transform[id])

	m, ok := w.Motion[id]
	require.True(t, ok)
	assert.Equal(t, state.Falling, m.State())

	_, isPlayer := w.IsPlayer[id]
	assert.True(t, isPlayer)
}

func TestCreateCollider(t *testing.T) {
	w := NewWorld()
	c := geom.Collider{Centre: geom.V(0, -200), Normal: geom.V(0, 1), Breadth: 400}

	id := w.CreateCollider(c)

	assert.True(t, w.Exists(id))
	assert.Equal(t, c, w.Collider[id])
	assert.Equal(t, 1, w.CountColliders())
	_, hasPos := w.Position[id]
	assert.False(t, hasPos, "terrain is static")
}

func TestColliders_CreationOrder(t *testing.T) {
	w := NewWorld()
	var want []geom.Collider
	for i := 0; i < 20; i++ {
		c := geom.Collider{Centre: geom.V(float64(i), 0), Normal: geom.V(0, 1), Breadth: 1}
		w.CreateCollider(c)
		want = append(want, c)
	}

	got := slices.Collect(w.Colliders())

	assert.Equal(t, want, got)
}

func TestColliders_SkipsDestroyed(t *testing.T) {
	w := NewWorld()
	a := w.CreateCollider(geom.Collider{Centre: geom.V(1, 0), Normal: geom.V(0, 1), Breadth: 1})
	w.CreateCollider(geom.Collider{Centre: geom.V(2, 0), Normal: geom.V(0, 1), Breadth: 1})

	w.DestroyEntity(a)

	got := slices.Collect(w.Colliders())
	require.Len(t, got, 1)
	assert.Equal(t, 2.0, got[0].Centre.X)
}

func TestDestroyEntity(t *testing.T) {
	w := NewWorld()
	id := w.CreatePlayer(testPlayerSpec(), state.Hooks{})

	require.True(t, w.Exists(id))

	// Destroy
	w.DestroyEntity(id)

	assert.False(t, w.Exists(id))
	_, hasPos := w.Position[id]
	assert.False(t, hasPos)
	_, hasVel := w.Velocity[id]
	assert.False(t, hasVel)
	_, hasMotion := w.Motion[id]
	assert.False(t, hasMotion)
	_, isPlayer := w.IsPlayer[id]
	assert.False(t, isPlayer)
	assert.Equal(t, EntityID(0), w.PlayerID)
}

func TestExists(t *testing.T) {
	w := NewWorld()
	id := w.NewEntity()

	assert.False(t, w.Exists(id), "Entity without Position should not exist")

	w.Position[id] = Position{}
	assert.True(t, w.Exists(id), "Entity with Position should exist")
}

func TestMotionIDs(t *testing.T) {
	w := NewWorld()
	w.CreateCollider(geom.Collider{Normal: geom.V(0, 1), Breadth: 1})
	p1 := w.CreatePlayer(testPlayerSpec(), state.Hooks{})
	p2 := w.CreatePlayer(testPlayerSpec(), state.Hooks{})

	assert.Equal(t, []EntityID{p1, p2}, w.MotionIDs())
}

func TestMovement_Landed(t *testing.T) {
	assert.True(t, Movement{OnGround: true}.Landed())
	assert.False(t, Movement{OnGround: true, WasOnGround: true}.Landed())
	assert.False(t, Movement{WasOnGround: true}.Landed())
	assert.False(t, Movement{}.Landed())
}
