package typegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teranos/hsuno/unoidl"
)

func TestDeriveNames(t *testing.T) {
	n := DeriveNames(DefaultOptions(), unoidl.MustParseModulePath("a.b"), "Widget")

	assert.Equal(t, "Widget", n.Name)
	assert.Equal(t, "a.b.Widget", n.FullName)
	assert.Equal(t, "a::b::Widget", n.Namespace)
	assert.Equal(t, "HSUNO_A_B_WIDGET_H", n.HeaderGuard)
	assert.Equal(t, "a/b/Widget.hpp", n.Include)
	assert.Equal(t, "Widget.hpp", n.OwnHeader)
	assert.Equal(t, "A/B", n.GeneratedDir)
	assert.Equal(t, "A/B/Widget.hpp", n.FilePath(n.OwnHeader))
	assert.Equal(t, "hsuno_a_b_Widget", n.CallSymbolPrefix)
	assert.Equal(t, "A.B.Widget", n.ForeignModule)
	assert.Equal(t, "Widget", n.ForeignType)
	assert.Equal(t, FileSet{"Widget.hpp", "Widget.cpp", "Widget.hs"}, n.Files)

	assert.Equal(t, "hsuno_a_b_Widget_getCount", n.CallSymbol("getCount"))
	assert.Equal(t, "a.b.Widget::getCount", n.QualifiedMethod("getCount"))
	assert.Equal(t, "cgetCount", n.ForeignImportName("getCount"))
}

func TestDeriveNames_Deterministic(t *testing.T) {
	module := unoidl.MustParseModulePath("com.sun.star.util")
	first := DeriveNames(DefaultOptions(), module, "theMacroExpander")
	second := DeriveNames(DefaultOptions(), module, "theMacroExpander")
	assert.Equal(t, first, second)
}

func TestDeriveNames_DoesNotMutateModule(t *testing.T) {
	module := unoidl.MustParseModulePath("a.b")
	DeriveNames(DefaultOptions(), module, "Widget")
	assert.Equal(t, []string{"a", "b"}, module.Segments())
}

func TestDeriveNames_RootModule(t *testing.T) {
	n := DeriveNames(DefaultOptions(), unoidl.ModulePath{}, "Widget")

	assert.Equal(t, "Widget", n.FullName)
	assert.Equal(t, "Widget", n.Namespace)
	assert.Equal(t, "HSUNO_WIDGET_H", n.HeaderGuard)
	assert.Equal(t, "", n.GeneratedDir)
	assert.Equal(t, "Widget.hpp", n.FilePath(n.OwnHeader))
	assert.Equal(t, "hsuno_Widget", n.CallSymbolPrefix)
	assert.Equal(t, "Widget", n.ForeignModule)
}

func TestDeriveNames_Singleton(t *testing.T) {
	n := DeriveNames(DefaultOptions(), unoidl.MustParseModulePath("com.sun.star.util"), "theMacroExpander")

	assert.Equal(t, "Com/Sun/Star/Util", n.GeneratedDir)
	assert.Equal(t, "Com.Sun.Star.Util.TheMacroExpander", n.ForeignModule)
	assert.Equal(t, "TheMacroExpander", n.ForeignType)
	assert.Equal(t, "hsuno_com_sun_star_util_theMacroExpander_new", n.ConstructorSymbol())
	assert.Equal(t, "cTheMacroExpander_new", n.ConstructorImportName())
	assert.Equal(t, "theMacroExpanderNew", n.ConstructorWrapperName())
}

func TestDeriveNames_CustomOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.SymbolPrefix = "lo_"
	opts.HeaderGuardPrefix = ""
	opts.HeaderGuardSuffix = "_HXX"
	opts.HeaderExtension = ".hxx"
	opts.SourceExtension = ".cxx"

	n := DeriveNames(opts, unoidl.MustParseModulePath("a.b"), "Widget")

	assert.Equal(t, "A_B_WIDGET_HXX", n.HeaderGuard)
	assert.Equal(t, "lo_a_b_Widget_f", n.CallSymbol("f"))
	assert.Equal(t, "Widget.hxx", n.OwnHeader)
	assert.Equal(t, "a/b/Widget.hpp", n.Include, "UNO headers keep their own extension")
	assert.Equal(t, FileSet{"Widget.hxx", "Widget.cxx", "Widget.hs"}, n.Files)
}

func TestGetterFunction(t *testing.T) {
	assert.Equal(t, "getCode", GetterFunction("code"))
	assert.Equal(t, "getCode", GetterFunction("Code"))
}

func TestReferenceType(t *testing.T) {
	assert.Equal(t, "com::sun::star::uno::Reference< a::b::Widget >", ReferenceType("a::b::Widget"))
}
