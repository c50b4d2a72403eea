package helix_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/helix/internal/helix"
)

const eps = 1e-9

func horizontal(v r3.Vec) float64 {
	return math.Hypot(v.X, v.Z)
}

func params(n int, r, h float64) helix.Params {
	p := helix.DefaultParams()
	p.SegmentCount, p.HelixRadius, p.HelixHeight = n, r, h
	return p
}

var _ = Describe("Build", func() {
	DescribeTable("produces one point per strand and one connector per segment",
		func(n int) {
			g := helix.Build(params(n, 2, 0.3))
			Expect(g.StrandA).To(HaveLen(n))
			Expect(g.StrandB).To(HaveLen(n))
			Expect(g.Connectors).To(HaveLen(n))
			Expect(g.Len()).To(Equal(3 * n))
		},
		Entry("empty", 0),
		Entry("single", 1),
		Entry("small", 3),
		Entry("default", helix.DefaultSegmentCount),
		Entry("upper bound", 200),
	)

	It("returns empty geometry for a negative count", func() {
		Expect(helix.Build(params(-5, 1, 1)).Len()).To(BeZero())
	})

	It("places strand points diametrically opposite at equal height and radius", func() {
		g := helix.Build(params(60, 1.7, 0.25))
		for i := range g.StrandA {
			a, b := g.StrandA[i].Position, g.StrandB[i].Position
			Expect(a.Y).To(Equal(b.Y))
			Expect(horizontal(a)).To(BeNumerically("~", horizontal(b), eps))
			Expect(a.X).To(BeNumerically("~", -b.X, eps))
			Expect(a.Z).To(BeNumerically("~", -b.Z, eps))
			Expect(g.StrandB[i].Angle - g.StrandA[i].Angle).To(BeNumerically("~", math.Pi, eps))
		}
	})

	It("centres every connector on its strand pair", func() {
		g := helix.Build(params(25, 3, 0.5))
		for i, c := range g.Connectors {
			a, b := g.StrandA[i].Position, g.StrandB[i].Position
			Expect(c.Index).To(Equal(i))
			Expect(c.Position.X).To(BeNumerically("~", (a.X+b.X)/2, eps))
			Expect(c.Position.Y).To(BeNumerically("~", (a.Y+b.Y)/2, eps))
			Expect(c.Position.Z).To(BeNumerically("~", (a.Z+b.Z)/2, eps))
		}
	})

	It("orients each connector's long axis toward strand B", func() {
		g := helix.Build(params(10, 2, 0.3))
		for i, c := range g.Connectors {
			toB := r3.Unit(r3.Sub(g.StrandB[i].Position, c.Position))
			Expect(r3.Dot(c.Direction, toB)).To(BeNumerically("~", 1, eps))

			axis := c.Orientation.Rotate(helix.Up)
			Expect(r3.Dot(axis, c.Direction)).To(BeNumerically("~", 1, 1e-9))

			lo, hi := c.Endpoints()
			Expect(r3.Norm(r3.Sub(hi, lo))).To(BeNumerically("~", c.Length, 1e-9))
			Expect(r3.Dot(r3.Sub(hi, lo), toB)).To(BeNumerically(">", 0))
		}
	})

	It("scales horizontal distance with the radius and keeps heights", func() {
		small := helix.Build(params(30, 1, 0.4))
		large := helix.Build(params(30, 2.5, 0.4))
		for i := range small.StrandA {
			for _, pair := range [][2]helix.StrandPoint{
				{small.StrandA[i], large.StrandA[i]},
				{small.StrandB[i], large.StrandB[i]},
			} {
				Expect(horizontal(pair[0].Position)).To(BeNumerically("~", 1, eps))
				Expect(horizontal(pair[1].Position)).To(BeNumerically("~", 2.5, eps))
				Expect(pair[1].Position.Y).To(Equal(pair[0].Position.Y))
			}
		}
	})

	It("keeps connectors finite when the radius is zero", func() {
		g := helix.Build(params(4, 0, 0.3))
		for _, c := range g.Connectors {
			Expect(math.IsNaN(c.Direction.X) || math.IsNaN(c.Direction.Z)).To(BeFalse())
			Expect(r3.Norm(c.Direction)).To(BeNumerically("~", 1, eps))
			Expect(c.Direction.Y).To(BeNumerically("~", 0, eps))
			lo, hi := c.Endpoints()
			Expect(r3.Norm(r3.Sub(hi, lo))).To(BeNumerically("~", c.Length, eps))
		}
	})

	It("is a pure function of the parameters", func() {
		p := params(45, 2.2, 0.35)
		Expect(helix.Build(p)).To(Equal(helix.Build(p)))
	})

	It("matches the three segment example", func() {
		g := helix.Build(params(3, 1, 1))
		for i, want := range []float64{0, 0.3, 0.6} {
			a, b := g.StrandA[i], g.StrandB[i]
			Expect(a.Angle).To(BeNumerically("~", want, eps))
			Expect(b.Angle).To(BeNumerically("~", math.Pi+want, eps))
			Expect(a.Position.Y).To(Equal(float64(i)))
			Expect(b.Position.Y).To(Equal(float64(i)))
			Expect(a.Position.X).To(BeNumerically("~", math.Cos(want), eps))
			Expect(a.Position.Z).To(BeNumerically("~", math.Sin(want), eps))
			Expect(b.Position.X).To(BeNumerically("~", math.Cos(math.Pi+want), eps))
			Expect(b.Position.Z).To(BeNumerically("~", math.Sin(math.Pi+want), eps))
		}
	})
})

var _ = Describe("RotateY", func() {
	It("turns about the vertical axis without changing height", func() {
		v := helix.RotateY(r3.Vec{X: 2, Y: 5}, math.Pi/2)
		Expect(v.Y).To(BeNumerically("~", 5, eps))
		Expect(horizontal(v)).To(BeNumerically("~", 2, eps))
		Expect(v.X).To(BeNumerically("~", 0, eps))
	})
})
