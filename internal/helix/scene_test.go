package helix_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/helix/internal/helix"
)

var _ = Describe("Scene", func() {
	var (
		store *helix.Store
		scene *helix.Scene
	)

	BeforeEach(func() {
		store = helix.NewStore(params(20, 2, 0.3), helix.DefaultBounds())
		scene = helix.NewScene()
		scene.Bind(store)
	})

	It("builds on bind", func() {
		Expect(scene.Len()).To(Equal(60))
		Expect(scene.Generation()).To(Equal(1))
	})

	It("rebuilds wholesale when a geometry field changes", func() {
		Expect(store.Set(helix.FieldSegmentCount, 10)).To(BeTrue())
		Expect(scene.Len()).To(Equal(30))
		Expect(scene.Generation()).To(Equal(2))
		Expect(scene.Geometry()).To(Equal(helix.Build(store.Params())))

		store.Set(helix.FieldHelixRadius, 4)
		for _, p := range scene.StrandA() {
			Expect(math.Hypot(p.Position.X, p.Position.Z)).To(BeNumerically("~", 4, eps))
		}
		Expect(scene.Generation()).To(Equal(3))
	})

	It("does not rebuild on rotation speed changes", func() {
		store.Set(helix.FieldRotationSpeed, 1.5)
		Expect(scene.Generation()).To(Equal(1))
	})

	It("stops rebuilding once unbound", func() {
		scene.Unbind()
		store.Set(helix.FieldHelixHeight, 0.9)
		Expect(scene.Generation()).To(Equal(1))
	})

	It("applies its rotation in World and reports the top", func() {
		scene.SetRotation(math.Pi)
		w := scene.World(r3.Vec{X: 1, Y: 2})
		Expect(w.X).To(BeNumerically("~", -1, eps))
		Expect(w.Y).To(BeNumerically("~", 2, eps))
		Expect(scene.Top()).To(BeNumerically("~", 19*0.3, eps))
	})

	It("empties on Clear", func() {
		scene.Clear()
		Expect(scene.Len()).To(BeZero())
		Expect(scene.Top()).To(BeZero())
	})
})
