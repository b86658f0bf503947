package domain

import "fmt"

// Step is a position in the fixed checkout sequence.
type Step int

const (
	StepAddress Step = iota
	StepRecipient
	StepDelivery
	StepPayment
	StepReview
)

var stepNames = [...]string{"address", "recipient", "delivery", "payment", "review"}

// Steps returns every step in order.
func Steps() []Step {
	return []Step{StepAddress, StepRecipient, StepDelivery, StepPayment, StepReview}
}

// Valid reports whether s is one of the known steps.
func (s Step) Valid() bool {
	return s >= StepAddress && s <= StepReview
}

func (s Step) String() string {
	if !s.Valid() {
		return fmt.Sprintf("step(%d)", int(s))
	}
	return stepNames[s]
}

// ParseStep converts a step name into a Step.
func ParseStep(name string) (Step, error) {
	for i, n := range stepNames {
		if n == name {
			return Step(i), nil
		}
	}
	return 0, fmt.Errorf("unknown checkout step %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Step) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unknown checkout step %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Step) UnmarshalText(b []byte) error {
	step, err := ParseStep(string(b))
	if err != nil {
		return err
	}
	*s = step
	return nil
}
