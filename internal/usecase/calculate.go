package usecase

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aalvaropc/euclid/internal/domain"
)

// Calculate is the calculator: it applies the operand policy and reports
// GCD, LCM, the lesson's "LCM divided by each number" and Euclid's steps.
type Calculate struct {
	policy   domain.OperandsConfig
	validate *validator.Validate
}

func NewCalculate(policy domain.OperandsConfig) *Calculate {
	return &Calculate{
		policy:   policy,
		validate: validator.New(),
	}
}

func (uc *Calculate) Execute(a, b int64) (domain.Calculation, error) {
	if err := uc.check("a", a); err != nil {
		return domain.Calculation{}, err
	}
	if err := uc.check("b", b); err != nil {
		return domain.Calculation{}, err
	}

	lcm, err := domain.CheckedLCM(a, b)
	if err != nil {
		return domain.Calculation{}, err
	}

	out := domain.Calculation{
		A:     a,
		B:     b,
		GCD:   domain.GCD(a, b),
		LCM:   lcm,
		Steps: domain.EuclidSteps(a, b),
	}
	if a != 0 {
		m := lcm / a
		out.MultipleA = &m
	}
	if b != 0 {
		m := lcm / b
		out.MultipleB = &m
	}
	return out, nil
}

// ExecuteMany folds GCD and LCM over two or more numbers.
func (uc *Calculate) ExecuteMany(nums []int64) (domain.ListCalculation, error) {
	if len(nums) < 2 {
		return domain.ListCalculation{}, &domain.OpError{
			Op:   "calculate",
			Kind: domain.KindInvalidOperand,
			Err:  fmt.Errorf("need at least two numbers, got %d: %w", len(nums), domain.ErrInvalidOperand),
		}
	}
	for i, n := range nums {
		if err := uc.check(fmt.Sprintf("operand %d", i+1), n); err != nil {
			return domain.ListCalculation{}, err
		}
	}

	lcm, err := domain.LCMOf(nums...)
	if err != nil {
		return domain.ListCalculation{}, err
	}
	return domain.ListCalculation{
		Operands: append([]int64(nil), nums...),
		GCD:      domain.GCDOf(nums...),
		LCM:      lcm,
	}, nil
}

func (uc *Calculate) check(field string, n int64) error {
	// |math.MinInt64| does not fit in an int64, so GCD would come out negative.
	if n == math.MinInt64 {
		return &domain.OpError{
			Op:   "calculate",
			Kind: domain.KindInvalidOperand,
			Err:  fmt.Errorf("%s=%d is too small, its size does not fit in 64 bits: %w", field, n, domain.ErrInvalidOperand),
		}
	}

	tag := uc.tag()
	if tag == "" {
		return nil
	}

	err := uc.validate.Var(n, tag)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		err = fmt.Errorf("%s=%d must be %s %s: %w", field, n, describe(verrs[0].Tag()), verrs[0].Param(), domain.ErrInvalidOperand)
	} else {
		err = fmt.Errorf("%s=%d: %v: %w", field, n, err, domain.ErrInvalidOperand)
	}
	return &domain.OpError{
		Op:   "calculate",
		Kind: domain.KindInvalidOperand,
		Err:  err,
	}
}

func (uc *Calculate) tag() string {
	var rules []string
	if !uc.policy.AllowNegative {
		rules = append(rules, "gte=0")
	}
	if uc.policy.MaxAbs > 0 {
		if uc.policy.AllowNegative {
			rules = append(rules, fmt.Sprintf("gte=%d", -uc.policy.MaxAbs))
		}
		rules = append(rules, fmt.Sprintf("lte=%d", uc.policy.MaxAbs))
	}
	return strings.Join(rules, ",")
}

func describe(tag string) string {
	switch tag {
	case "gte":
		return ">="
	case "lte":
		return "<="
	default:
		return tag
	}
}
