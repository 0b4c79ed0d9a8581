package csvexport_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfe-complete/complete-api/internal/csvexport"
	"github.com/dfe-complete/complete-api/internal/domain"
)

// build runs a pure builder and fails the test on error.
func build[T any](t *testing.T, b csvexport.Builder[T], m T) string {
	t.Helper()
	v, err := b.Build(context.Background(), m)
	require.NoError(t, err)
	return v
}

func identity[T any](v T) T { return v }

func TestBlankIfEmpty(t *testing.T) {
	b := csvexport.BlankIfEmpty(identity[string])

	assert.Equal(t, "value", build(t, b, "value"))
	assert.Equal(t, "", build(t, b, ""))
}

func TestDefaultIfEmpty(t *testing.T) {
	b := csvexport.DefaultIfEmpty(identity[string], "unconfirmed")

	assert.Equal(t, "2025-01-01", build(t, b, "2025-01-01"))
	assert.Equal(t, "unconfirmed", build(t, b, ""))
}

func TestDefaultIf(t *testing.T) {
	type model struct {
		flag  bool
		value string
	}
	b := csvexport.DefaultIf(
		func(m model) bool { return m.flag },
		func(m model) string { return m.value },
		"default",
	)

	assert.Equal(t, "default", build(t, b, model{flag: true, value: "x"}))
	assert.Equal(t, "x", build(t, b, model{flag: false, value: "x"}))
	assert.Equal(t, "", build(t, b, model{}))
}

func TestBool(t *testing.T) {
	yes, no := true, false
	b := csvexport.Bool(identity[*bool], "yes", "no")

	assert.Equal(t, "yes", build(t, b, &yes))
	assert.Equal(t, "no", build(t, b, &no))
	assert.Equal(t, "no", build(t, b, (*bool)(nil)))
}

func TestAcademyOrderType(t *testing.T) {
	tests := []struct {
		name     string
		project  *domain.Project
		expected string
	}{
		{"transfer", &domain.Project{Type: domain.ProjectTypeTransfer, DirectiveAcademyOrder: true}, "not applicable"},
		{"directive", &domain.Project{Type: domain.ProjectTypeConversion, DirectiveAcademyOrder: true}, "directive academy order"},
		{"standard", &domain.Project{Type: domain.ProjectTypeConversion}, "academy order"},
		{"no project", nil, ""},
	}

	b := csvexport.AcademyOrderType(identity[*domain.Project])
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, build(t, b, tc.project))
		})
	}
}

func TestAgeRange(t *testing.T) {
	n := func(v int) *int { return &v }
	tests := []struct {
		lower, upper *int
		expected     string
	}{
		{nil, nil, ""},
		{nil, n(11), ""},
		{n(4), nil, ""},
		{n(4), n(11), "4-11"},
		{n(2), n(17), "2-17"},
	}

	b := csvexport.AgeRange(identity[*domain.Establishment])
	for _, tc := range tests {
		e := &domain.Establishment{AgeRangeLower: tc.lower, AgeRangeUpper: tc.upper}
		assert.Equal(t, tc.expected, build(t, b, e))
	}
	assert.Equal(t, "", build(t, b, (*domain.Establishment)(nil)))
}

func TestFormAMat(t *testing.T) {
	b := csvexport.FormAMat(identity[*domain.Project])

	assert.Equal(t, "form a MAT", build(t, b, &domain.Project{}))
	assert.Equal(t, "join a MAT", build(t, b, &domain.Project{IncomingTrustUkprn: domain.UkprnPtr(10059853)}))
}

func TestRPAOption(t *testing.T) {
	opt := func(o domain.RiskProtectionArrangementOption) *domain.RiskProtectionArrangementOption { return &o }
	tests := []struct {
		option   *domain.RiskProtectionArrangementOption
		expected string
	}{
		{opt(domain.RPAStandard), "standard"},
		{opt(domain.RPACommercial), "commercial"},
		{opt(domain.RPAChurchOrTrust), "church or trust"},
		{nil, "standard"},
	}

	b := csvexport.RPAOption(identity[*domain.RiskProtectionArrangementOption])
	for _, tc := range tests {
		assert.Equal(t, tc.expected, build(t, b, tc.option))
	}
}

func TestSchoolPhase(t *testing.T) {
	b := csvexport.SchoolPhase(identity[*domain.Establishment])

	assert.Equal(t, "Primary", build(t, b, &domain.Establishment{PhaseName: "Primary", TypeName: "Academy converter"}))
	assert.Equal(t, "Special school", build(t, b, &domain.Establishment{PhaseName: "Not applicable", TypeName: "Special school"}))
	assert.Equal(t, "", build(t, b, (*domain.Establishment)(nil)))
}

func TestUserName(t *testing.T) {
	b := csvexport.UserName(identity[*domain.User])

	assert.Equal(t, "Alex Case", build(t, b, &domain.User{FirstName: "Alex", LastName: "Case"}))
	assert.Equal(t, "", build(t, b, (*domain.User)(nil)))
}

func TestDfeNumberLAESTAB(t *testing.T) {
	b := csvexport.DfeNumberLAESTAB()

	m := fullModel()
	assert.Equal(t, "202/4001", build(t, b, m))

	m.Project.AcademyUrn = nil
	assert.Equal(t, "", build(t, b, m), "blank without an academy URN")

	m = fullModel()
	m.Academy = nil
	assert.Equal(t, "", build(t, b, m), "blank when the academy is unknown")
}

func TestProvisionalDate(t *testing.T) {
	b := csvexport.ProvisionalDate()

	m := fullModel()
	assert.Equal(t, "2025-01-01", build(t, b, m), "history previous date wins")

	m.SignificantDateHistory = nil
	assert.Equal(t, "2025-03-01", build(t, b, m), "falls back to the project date")

	m.Project.SignificantDate = nil
	assert.Equal(t, "", build(t, b, m))
}

func TestProjectType(t *testing.T) {
	b := csvexport.ProjectType()

	m := fullModel()
	assert.Equal(t, "Conversion", build(t, b, m))
	m.Project.Type = domain.ProjectTypeTransfer
	assert.Equal(t, "Transfer", build(t, b, m))
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}
