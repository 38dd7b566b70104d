package typegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/hsuno/errors"
	"github.com/teranos/hsuno/unoidl"
)

func widgetNames() Names {
	return DeriveNames(DefaultOptions(), unoidl.MustParseModulePath("a.b"), "Widget")
}

func TestPlanMethod_NoParams(t *testing.T) {
	plan, err := PlanMethod(widgetNames(), unoidl.Method{Name: "getCount", ReturnType: unoidl.T("long")})
	require.NoError(t, err)

	assert.Equal(t, "hsuno_a_b_Widget_getCount", plan.Symbol)
	assert.Equal(t, "cgetCount", plan.ForeignName)
	assert.Equal(t, "a.b.Widget::getCount", plan.Qualified)
	assert.True(t, plan.Supported())
	assert.True(t, plan.HasResult())
	assert.Empty(t, plan.Params)
	assert.Equal(t, CategoryPrimitive, plan.Return.Category)
	assert.Equal(t, "sal_Int32", plan.Return.Declaration)
	assert.Equal(t, "Int32", plan.Return.Wrapper)
}

func TestPlanMethod_Params(t *testing.T) {
	plan, err := PlanMethod(widgetNames(), unoidl.Method{
		Name:       "setLabel",
		ReturnType: unoidl.Void,
		Parameters: []unoidl.Parameter{
			{Name: "label", Type: unoidl.T("string")},
			{Name: "n", Type: unoidl.T("long")},
			{Name: "suffix", Type: unoidl.T("string")},
		},
	})
	require.NoError(t, err)

	assert.False(t, plan.HasResult())
	require.Len(t, plan.Params, 3)
	assert.Equal(t, "rtl::OUString *", plan.Params[0].Declaration)
	assert.Equal(t, "Ptr OUString", plan.Params[0].Foreign)
	assert.Equal(t, "Text", plan.Params[0].Wrapper)
	assert.Equal(t, "sal_Int32", plan.Params[1].Declaration)

	assert.Equal(t, CategoryString, plan.Params[0].Category)
	assert.Equal(t, CategoryPrimitive, plan.Params[1].Category)
	assert.Equal(t, "suffix", plan.Params[2].Name)
}

func TestPlanMethod_Aggregates(t *testing.T) {
	plan, err := PlanMethod(widgetNames(), unoidl.Method{
		Name:       "getItems",
		ReturnType: unoidl.T("[]string"),
		Parameters: []unoidl.Parameter{
			{Name: "filter", Type: unoidl.T("any")},
			{Name: "limit", Type: unoidl.T("long")},
		},
	})
	require.NoError(t, err)

	assert.False(t, plan.Supported())
	assert.Equal(t, []unoidl.TypeRef{unoidl.T("[]string"), unoidl.T("any")}, plan.Unsupported)
	assert.False(t, plan.Params[0].Supported())
	assert.Empty(t, plan.Params[0].Declaration)
	assert.True(t, plan.Params[1].Supported())
}

func TestPlanMethod_Errors(t *testing.T) {
	tests := []struct {
		name    string
		method  unoidl.Method
		invalid bool
	}{
		{
			name:   "unknown return type",
			method: unoidl.Method{Name: "f", ReturnType: unoidl.T("a..b")},
		},
		{
			name: "unknown parameter type",
			method: unoidl.Method{Name: "f", ReturnType: unoidl.Void, Parameters: []unoidl.Parameter{
				{Name: "x", Type: unoidl.T("")},
			}},
		},
		{
			name: "void parameter",
			method: unoidl.Method{Name: "f", ReturnType: unoidl.Void, Parameters: []unoidl.Parameter{
				{Name: "x", Type: unoidl.Void},
			}},
			invalid: true,
		},
		{
			name: "duplicate parameter",
			method: unoidl.Method{Name: "f", ReturnType: unoidl.Void, Parameters: []unoidl.Parameter{
				{Name: "x", Type: unoidl.T("long")},
				{Name: "x", Type: unoidl.T("string")},
			}},
			invalid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanMethod(widgetNames(), tt.method)
			require.Error(t, err)
			if tt.invalid {
				assert.True(t, errors.IsInvalidSchema(err), "got %v", err)
			} else {
				assert.True(t, errors.Is(err, errors.ErrUnknownType), "got %v", err)
			}
			assert.Contains(t, err.Error(), "a.b.Widget::f")
		})
	}
}

func TestPlanGetter(t *testing.T) {
	names := DeriveNames(DefaultOptions(), unoidl.MustParseModulePath("a.b"), "SomeException")

	g, err := PlanGetter(names, unoidl.Member{Name: "code", Type: unoidl.T("long")})
	require.NoError(t, err)
	assert.Equal(t, "getCode", g.Function)
	assert.Equal(t, "hsuno_a_b_SomeException_getCode", g.Symbol)
	assert.Equal(t, "cgetCode", g.ForeignName)
	assert.Equal(t, "sal_Int32", g.Value.Declaration)
	assert.Equal(t, "Int32", g.Value.Foreign)
}

func TestPlanGetter_NonPrimitive(t *testing.T) {
	names := DeriveNames(DefaultOptions(), unoidl.MustParseModulePath("a.b"), "SomeException")

	for _, typ := range []string{"string", "any", "[]long"} {
		_, err := PlanGetter(names, unoidl.Member{Name: "m", Type: unoidl.T(typ)})
		require.Error(t, err, typ)
		assert.True(t, errors.IsUnsupported(err), typ)
	}
}
