package mapa

// Session is the environment a parse runs against: the numeric domain, the
// capability switches, and the name tables. The constant and function
// tables are fixed at construction; only the variable table changes, and
// only through assignment statements. A Session is not safe for concurrent
// use, though the Values and Exprs it produces are.
type Session struct {
	domain Domain
	assign bool
	free   bool

	consts map[string]Value
	vars   vars
	unary  map[string]UnaryFunc
	binary map[string]BinaryFunc
}

// SessionOption is an option for creating a session.
type SessionOption interface {
	sessionOption(*Session)
}

type (
	domainopt Domain
	assignopt bool
	freeopt   bool
	varsopt   map[string]Value
	constopt  map[string]Value
	unaryopt  map[string]UnaryFunc
	binaryopt map[string]BinaryFunc
)

func (o domainopt) sessionOption(s *Session) { s.domain = Domain(o) }
func (o assignopt) sessionOption(s *Session) { s.assign = bool(o) }
func (o freeopt) sessionOption(s *Session)   { s.free = bool(o) }

func (o varsopt) sessionOption(s *Session) {
	for k, v := range o {
		s.vars[k] = val(v)
	}
}

func (o constopt) sessionOption(s *Session) {
	s.consts = make(map[string]Value, len(o))
	for k, v := range o {
		s.consts[k] = v
	}
}

func (o unaryopt) sessionOption(s *Session) {
	s.unary = make(map[string]UnaryFunc, len(o))
	for k, v := range o {
		s.unary[k] = v
	}
}

func (o binaryopt) sessionOption(s *Session) {
	s.binary = make(map[string]BinaryFunc, len(o))
	for k, v := range o {
		s.binary[k] = v
	}
}

// ComplexMode switches the session to the complex numeric domain. It
// permits j-suffixed literals, makes exponentiation complex, and selects
// the complex default function tables.
func ComplexMode() SessionOption {
	return domainopt(DomainComplex)
}

// DisableAssignment makes assignment statements fail with a
// CapabilityError.
func DisableAssignment() SessionOption {
	return assignopt(false)
}

// DisableFreeVariables makes unknown names fail with a NameError instead
// of parsing to symbolic variable nodes.
func DisableFreeVariables() SessionOption {
	return freeopt(false)
}

// WithVariables seeds the variable table.
func WithVariables(m map[string]Value) SessionOption {
	return varsopt(m)
}

// WithConstants replaces the default constant table (pi, e).
func WithConstants(m map[string]Value) SessionOption {
	return constopt(m)
}

// WithUnaryFuncs replaces the default unary function table.
func WithUnaryFuncs(m map[string]UnaryFunc) SessionOption {
	return unaryopt(m)
}

// WithBinaryFuncs replaces the default binary function table.
func WithBinaryFuncs(m map[string]BinaryFunc) SessionOption {
	return binaryopt(m)
}

// NewSession creates a session. The defaults are the real domain with
// assignment and free variables enabled, constants pi and e, and the
// domain's default function tables.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		assign: true,
		free:   true,
		vars:   make(vars),
	}
	for _, opt := range opts {
		opt.sessionOption(s)
	}
	if s.consts == nil {
		s.consts = defaultConstants
	}
	if s.unary == nil {
		if s.domain == DomainComplex {
			s.unary = complexUnary
		} else {
			s.unary = realUnary
		}
	}
	if s.binary == nil {
		if s.domain == DomainComplex {
			s.binary = complexBinary
		} else {
			s.binary = realBinary
		}
	}
	return s
}

// Domain returns the session's numeric domain.
func (s *Session) Domain() Domain {
	return s.domain
}

// Lookup returns the value bound to a variable. The result may be a
// partial expression if one was assigned.
func (s *Session) Lookup(name string) (Result, bool) {
	r, ok := s.vars[name]
	return r, ok
}

// Vars returns the sorted names in the variable table.
func (s *Session) Vars() []string {
	names := make([]string, 0, len(s.vars))
	for k := range s.vars {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}
