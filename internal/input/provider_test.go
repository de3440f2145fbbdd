package input

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FormatDefault", func() {
	DescribeTable("renders defaults like the legacy prompts",
		func(v float64, want string) {
			Expect(FormatDefault(v)).To(Equal(want))
		},
		Entry("integral", 18.0, "18.0"),
		Entry("density", 1.225, "1.225"),
		Entry("trailing zero dropped", 0.110, "0.11"),
		Entry("negative", -0.15, "-0.15"),
		Entry("negative tenth", -0.10, "-0.1"),
		Entry("zero", 0.0, "0.0"),
	)
})

var _ = Describe("Constraint", func() {
	It("checks ranges", func() {
		Expect(Any.Allows(-1)).To(BeTrue())
		Expect(Positive.Allows(0)).To(BeFalse())
		Expect(Positive.Allows(0.001)).To(BeTrue())
		Expect(NonNegative.Allows(0)).To(BeTrue())
		Expect(NonNegative.Allows(-0.001)).To(BeFalse())
	})
})

var _ = Describe("Defaults", func() {
	It("returns the field default", func() {
		v, err := Defaults{}.Float(Field{Key: "velocity", Default: 18.0})
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(18.0))
	})
})

var _ = Describe("Preset", func() {
	var next *recordingProvider

	BeforeEach(func() {
		next = &recordingProvider{}
	})

	It("answers preset keys without consulting the next provider", func() {
		p := Preset{Values: map[string]float64{"velocity": 25}, Next: next}
		Expect(p.Float(Field{Key: "velocity", Default: 18})).To(Equal(25.0))
		Expect(next.asked).To(BeEmpty())
	})

	It("delegates other keys", func() {
		p := Preset{Values: map[string]float64{"velocity": 25}, Next: next}
		Expect(p.Float(Field{Key: "air_density", Default: 1.225})).To(Equal(1.225))
		Expect(next.asked).To(ConsistOf("air_density"))
	})

	It("falls back to defaults without a next provider", func() {
		p := Preset{}
		Expect(p.Float(Field{Key: "rudder.span", Default: 0.308})).To(Equal(0.308))
	})

	It("rejects preset values that violate the constraint", func() {
		p := Preset{Values: map[string]float64{"rudder.span": -1}}
		_, err := p.Float(Field{Key: "rudder.span", Default: 0.308, Constraint: Positive})
		Expect(errors.Is(err, ErrOutOfRange)).To(BeTrue())
	})
})

var _ = Describe("ParseValues", func() {
	It("parses key=value pairs", func() {
		values, err := ParseValues(map[string]string{"Velocity": "22", "aileron.ch": "-0.2"})
		Expect(err).NotTo(HaveOccurred())
		Expect(values).To(Equal(map[string]float64{"velocity": 22, "aileron.ch": -0.2}))
	})

	It("reports the offending key", func() {
		_, err := ParseValues(map[string]string{"velocity": "fast"})
		var inErr *InputError
		Expect(errors.As(err, &inErr)).To(BeTrue())
		Expect(inErr.Key).To(Equal("velocity"))
	})
})

type recordingProvider struct {
	asked []string
}

func (r *recordingProvider) Float(f Field) (float64, error) {
	r.asked = append(r.asked, f.Key)
	return f.Default, nil
}
