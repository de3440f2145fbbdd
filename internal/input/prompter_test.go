package input

import (
	"bytes"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("terminal closed")
}

var _ = Describe("Prompter", func() {
	var (
		out      *bytes.Buffer
		velocity Field
		span     Field
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		velocity = Field{Key: "velocity", Prompt: "Aircraft velocity (V) in m/s", Default: 18.0, Constraint: NonNegative}
		span = Field{Key: "aileron.span", Prompt: "Aileron span in meters", Default: 0.924, Constraint: Positive}
	})

	Context("prompt text", func() {
		It("shows the prompt with the default as an example", func() {
			p := NewScripted([]string{""}, out, Lenient)
			_, err := p.Float(velocity)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal("Aircraft velocity (V) in m/s [e.g., 18.0]: "))
		})
	})

	Context("with empty input", func() {
		It("returns the default silently", func() {
			p := NewScripted([]string{""}, out, Lenient)
			v, err := p.Float(velocity)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(18.0))
			Expect(out.String()).NotTo(ContainSubstring("Invalid"))
		})

		It("returns the default at end of input", func() {
			p := NewScripted(nil, out, Strict)
			v, err := p.Float(span)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(0.924))
		})

		It("accepts CRLF line endings", func() {
			p := NewPrompter(strings.NewReader("\r\n22.5\r\n"), out, Strict)
			v, err := p.Float(velocity)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(18.0))

			v, err = p.Float(velocity)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(22.5))
		})
	})

	Context("with numeric input", func() {
		It("parses the value", func() {
			p := NewScripted([]string{"25", " 0.5 ", "1e-1"}, out, Strict)
			Expect(p.Float(velocity)).To(Equal(25.0))
			Expect(p.Float(span)).To(Equal(0.5))
			Expect(p.Float(span)).To(Equal(0.1))
		})

		It("accepts negative hinge coefficients", func() {
			ch := Field{Key: "aileron.ch", Prompt: "Aileron Hinge Moment Coefficient (Ch)", Default: -0.15}
			p := NewScripted([]string{"-0.2"}, out, Strict)
			Expect(p.Float(ch)).To(Equal(-0.2))
		})
	})

	Context("with unparseable input", func() {
		It("falls back to the default and names it in lenient mode", func() {
			p := NewScripted([]string{"fast"}, out, Lenient)
			v, err := p.Float(velocity)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(18.0))
			Expect(out.String()).To(HaveSuffix("Invalid input. Using default value: 18.0\n"))
		})

		It("treats whitespace-only lines as invalid", func() {
			p := NewScripted([]string{"   "}, out, Lenient)
			Expect(p.Float(velocity)).To(Equal(18.0))
			Expect(out.String()).To(ContainSubstring("Invalid input."))
		})

		It("rejects non-finite numbers", func() {
			p := NewScripted([]string{"NaN"}, out, Strict)
			_, err := p.Float(velocity)
			Expect(errors.Is(err, ErrInvalidInput)).To(BeTrue())
		})

		It("returns an InputError in strict mode", func() {
			p := NewScripted([]string{"fast"}, out, Strict)
			_, err := p.Float(velocity)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrInvalidInput)).To(BeTrue())

			var inErr *InputError
			Expect(errors.As(err, &inErr)).To(BeTrue())
			Expect(inErr.Key).To(Equal("velocity"))
			Expect(inErr.Raw).To(Equal("fast"))
			Expect(out.String()).NotTo(ContainSubstring("Invalid input."))
		})
	})

	Context("with out of range input", func() {
		It("substitutes the default in lenient mode", func() {
			p := NewScripted([]string{"-0.3"}, out, Lenient)
			Expect(p.Float(span)).To(Equal(0.924))
			Expect(out.String()).To(HaveSuffix("Out of range input. Using default value: 0.924\n"))
		})

		It("fails in strict mode", func() {
			p := NewScripted([]string{"0"}, out, Strict)
			_, err := p.Float(span)
			Expect(errors.Is(err, ErrOutOfRange)).To(BeTrue())
		})
	})

	Context("when the reader fails", func() {
		It("returns the read error", func() {
			p := NewPrompter(failingReader{}, out, Lenient)
			_, err := p.Float(velocity)
			Expect(err).To(MatchError(ContainSubstring("terminal closed")))
		})
	})
})
