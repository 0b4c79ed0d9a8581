// Package csvexport renders domain models as CSV rows.
//
// Each column is a Builder: a small, reusable rule that turns one model into
// one cell. Builders never fail on missing data; they fall back to "" or a
// documented default. Only builders that consult the trust directory can
// return an error.
//
// Cells are not quoted or escaped. Values containing commas or newlines will
// shift columns in the output.
package csvexport

import (
	"context"
	"strconv"
	"time"

	"github.com/dfe-complete/complete-api/internal/domain"
)

// DateLayout is the format of every date cell.
const DateLayout = "2006-01-02"

// Builder renders one CSV cell for a model.
type Builder[T any] interface {
	Build(ctx context.Context, m T) (string, error)
}

// Func is a pure Builder. It is stateless and cannot fail.
type Func[T any] func(m T) string

// Build implements Builder.
func (f Func[T]) Build(_ context.Context, m T) (string, error) {
	return f(m), nil
}

// BuilderFunc adapts an ordinary function to Builder.
type BuilderFunc[T any] func(ctx context.Context, m T) (string, error)

// Build implements Builder.
func (f BuilderFunc[T]) Build(ctx context.Context, m T) (string, error) {
	return f(ctx, m)
}

// BlankIfEmpty renders the selected string verbatim.
func BlankIfEmpty[T any](sel func(T) string) Func[T] {
	return func(m T) string { return sel(m) }
}

// DefaultIfEmpty renders the selected string, or def when it is empty.
func DefaultIfEmpty[T any](sel func(T) string, def string) Func[T] {
	return func(m T) string {
		if v := sel(m); v != "" {
			return v
		}
		return def
	}
}

// DefaultIf renders def when cond holds, otherwise the selected string.
func DefaultIf[T any](cond func(T) bool, sel func(T) string, def string) Func[T] {
	return func(m T) string {
		if cond(m) {
			return def
		}
		return sel(m)
	}
}

// Bool renders yes for true and no for false or unknown.
func Bool[T any](sel func(T) *bool, yes, no string) Func[T] {
	return func(m T) string {
		if v := sel(m); v != nil && *v {
			return yes
		}
		return no
	}
}

// AcademyOrderType describes the order under which a school converts.
func AcademyOrderType[T any](sel func(T) *domain.Project) Func[T] {
	return func(m T) string {
		p := sel(m)
		switch {
		case p == nil:
			return ""
		case p.Type == domain.ProjectTypeTransfer:
			return "not applicable"
		case p.DirectiveAcademyOrder:
			return "directive academy order"
		default:
			return "academy order"
		}
	}
}

// AgeRange renders "{lower}-{upper}" when both bounds are known.
func AgeRange[T any](sel func(T) *domain.Establishment) Func[T] {
	return func(m T) string {
		e := sel(m)
		if e == nil || e.AgeRangeLower == nil || e.AgeRangeUpper == nil {
			return ""
		}
		return strconv.Itoa(*e.AgeRangeLower) + "-" + strconv.Itoa(*e.AgeRangeUpper)
	}
}

// FormAMat reports whether the project creates a new trust or joins an
// existing one.
func FormAMat[T any](sel func(T) *domain.Project) Func[T] {
	return func(m T) string {
		p := sel(m)
		if p == nil {
			return ""
		}
		if p.FormAMat() {
			return "form a MAT"
		}
		return "join a MAT"
	}
}

// RPAOption renders a risk protection arrangement. Unset means standard.
func RPAOption[T any](sel func(T) *domain.RiskProtectionArrangementOption) Func[T] {
	return func(m T) string {
		opt := sel(m)
		if opt == nil {
			return "standard"
		}
		switch *opt {
		case domain.RPACommercial:
			return "commercial"
		case domain.RPAChurchOrTrust:
			return "church or trust"
		default:
			return "standard"
		}
	}
}

// SchoolPhase renders the phase, substituting the school type when the phase
// is "Not applicable".
func SchoolPhase[T any](sel func(T) *domain.Establishment) Func[T] {
	return func(m T) string {
		e := sel(m)
		if e == nil {
			return ""
		}
		if e.PhaseName == "Not applicable" {
			return e.TypeName
		}
		return e.PhaseName
	}
}

// UserName renders "{first} {last}", or "" when there is no user.
func UserName[T any](sel func(T) *domain.User) Func[T] {
	return func(m T) string {
		u := sel(m)
		if u == nil {
			return ""
		}
		return u.FirstName + " " + u.LastName
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}
