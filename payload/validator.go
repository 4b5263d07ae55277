package payload

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Validator decides whether a value may become a node's payload.
type Validator interface {
	Accepts(v Value) bool
}

// Checker is implemented by validators that can explain a rejection. Nodes
// attach the returned error to the PayloadError they raise.
type Checker interface {
	Check(v Value) error
}

// ValidatorFunc adapts a predicate to Validator.
type ValidatorFunc func(Value) bool

func (f ValidatorFunc) Accepts(v Value) bool { return f(v) }

// Default returns the validator used by nodes built without an explicit one.
func Default() Validator {
	return DomainValidator{}
}

// Reason returns why val rejects v, or nil if it accepts it.
func Reason(val Validator, v Value) error {
	if c, ok := val.(Checker); ok {
		return c.Check(v)
	}
	if val.Accepts(v) {
		return nil
	}
	return fmt.Errorf("%w: %s value", ErrRejected, v.Kind())
}

// DomainValidator accepts every member of the closed payload domain. It
// rejects NaN and infinite numbers, which would make a node unequal to its
// own clone, and text or symbols that are not valid UTF-8.
type DomainValidator struct{}

func (d DomainValidator) Accepts(v Value) bool { return d.Check(v) == nil }

func (DomainValidator) Check(v Value) error {
	if !v.Kind().Valid() {
		return fmt.Errorf("%w: unknown kind %s", ErrRejected, v.Kind())
	}
	switch v.Kind() {
	case KindNumber:
		if !v.Finite() {
			return fmt.Errorf("%w: non-finite number %s", ErrRejected, v)
		}
	case KindSymbol:
		if v.s == "" {
			return fmt.Errorf("%w: empty symbol", ErrRejected)
		}
		fallthrough
	case KindText:
		if !utf8.ValidString(v.s) {
			return fmt.Errorf("%w: invalid UTF-8 in %s", ErrRejected, v.Kind())
		}
	}
	return nil
}

var symbolPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*[?!=]?$`)

func validateMaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

func validateSymbolName(fl validator.FieldLevel) bool {
	return symbolPattern.MatchString(fl.Field().String())
}

// ConstraintValidator layers Config limits over DomainValidator. Checks run
// through go-playground/validator tags so limits read the same way as struct
// validation elsewhere.
type ConstraintValidator struct {
	cfg      Config
	kindTag  string
	textTag  string
	symTag   string
	validate *validator.Validate
}

// NewConstraintValidator builds a validator for cfg. Unknown names in
// AllowedKinds are an error.
func NewConstraintValidator(cfg Config) (*ConstraintValidator, error) {
	for _, name := range cfg.AllowedKinds {
		if _, ok := ParseKind(name); !ok {
			return nil, fmt.Errorf("unknown payload kind %q in allowed_kinds", name)
		}
	}

	v := validator.New()
	if err := v.RegisterValidation("maxbytes", validateMaxBytes); err != nil {
		return nil, fmt.Errorf("register maxbytes: %w", err)
	}
	if err := v.RegisterValidation("symbolname", validateSymbolName); err != nil {
		return nil, fmt.Errorf("register symbolname: %w", err)
	}

	c := &ConstraintValidator{cfg: cfg, validate: v, symTag: "symbolname"}
	if len(cfg.AllowedKinds) > 0 {
		c.kindTag = "oneof=" + strings.Join(cfg.AllowedKinds, " ")
	}
	if cfg.MaxTextBytes > 0 {
		c.textTag = fmt.Sprintf("maxbytes=%d", cfg.MaxTextBytes)
		c.symTag += "," + c.textTag
	}
	return c, nil
}

func (c *ConstraintValidator) Accepts(v Value) bool { return c.Check(v) == nil }

func (c *ConstraintValidator) Check(v Value) error {
	if err := (DomainValidator{}).Check(v); err != nil {
		return err
	}
	if c.cfg.RequirePayload && v.IsAbsent() {
		return fmt.Errorf("%w: payload required", ErrRejected)
	}
	if c.kindTag != "" {
		if err := c.validate.Var(v.Kind().String(), c.kindTag); err != nil {
			return fmt.Errorf("%w: kind %s not allowed", ErrRejected, v.Kind())
		}
	}

	switch v.Kind() {
	case KindSymbol:
		if err := c.validate.Var(v.s, c.symTag); err != nil {
			return fmt.Errorf("%w: symbol %q: %v", ErrRejected, v.s, err)
		}
	case KindText:
		if c.textTag == "" {
			break
		}
		if err := c.validate.Var(v.s, c.textTag); err != nil {
			return fmt.Errorf("%w: text exceeds %d bytes", ErrRejected, c.cfg.MaxTextBytes)
		}
	}
	return nil
}

// Config returns the limits c enforces.
func (c *ConstraintValidator) Config() Config {
	return c.cfg
}
