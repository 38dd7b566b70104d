package haskell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/hsuno/typegen"
	"github.com/teranos/hsuno/unoidl"
)

func widgetNames() typegen.Names {
	return typegen.DeriveNames(typegen.DefaultOptions(), unoidl.MustParseModulePath("a.b"), "Widget")
}

func plan(t *testing.T, m unoidl.Method) *typegen.MethodPlan {
	t.Helper()
	p, err := typegen.PlanMethod(widgetNames(), m)
	require.NoError(t, err)
	return p
}

func TestForeignImport(t *testing.T) {
	tests := []struct {
		name   string
		method unoidl.Method
		want   string
	}{
		{
			name:   "primitive result",
			method: unoidl.Method{Name: "getCount", ReturnType: unoidl.T("long")},
			want: "foreign import ccall \"hsuno_a_b_Widget_getCount\" cgetCount\n" +
				"    :: Ptr UnoInterface -> Ptr (Ptr Any) -> IO Int32\n\n",
		},
		{
			name: "string parameter, string result",
			method: unoidl.Method{Name: "setLabel", ReturnType: unoidl.T("string"), Parameters: []unoidl.Parameter{
				{Name: "label", Type: unoidl.T("string")},
				{Name: "n", Type: unoidl.T("long")},
			}},
			want: "foreign import ccall \"hsuno_a_b_Widget_setLabel\" csetLabel\n" +
				"    :: Ptr UnoInterface -> Ptr (Ptr Any) -> Ptr OUString -> Int32 -> IO (Ptr OUString)\n\n",
		},
		{
			name:   "void result",
			method: unoidl.Method{Name: "reset", ReturnType: unoidl.Void},
			want: "foreign import ccall \"hsuno_a_b_Widget_reset\" creset\n" +
				"    :: Ptr UnoInterface -> Ptr (Ptr Any) -> IO ()\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForeignImport(plan(t, tt.method)))
		})
	}
}

func TestClassMethod_Primitive(t *testing.T) {
	got := ClassMethod(plan(t, unoidl.Method{Name: "getCount", ReturnType: unoidl.T("long")}))

	want := `    getCount :: a -> IO Int32
    getCount a = do
        let iface = getInterface a
        with nullPtr $ \exceptionPtr -> do
            result <- cgetCount iface exceptionPtr
            aException <- peek exceptionPtr
            when (aException /= nullPtr) (error "exceptions not yet implemented")
            return result

`
	assert.Equal(t, want, got)
}

func TestClassMethod_Strings(t *testing.T) {
	got := ClassMethod(plan(t, unoidl.Method{Name: "setLabel", ReturnType: unoidl.T("string"), Parameters: []unoidl.Parameter{
		{Name: "label", Type: unoidl.T("string")},
		{Name: "n", Type: unoidl.T("long")},
		{Name: "Suffix", Type: unoidl.T("string")},
	}}))

	want := `    setLabel :: a -> Text -> Int32 -> Text -> IO Text
    setLabel a label n suffix = do
        let iface = getInterface a
        withOUString label $ \hsLabel -> do
            withOUString suffix $ \hsSuffix -> do
                with nullPtr $ \exceptionPtr -> do
                    result <- csetLabel iface exceptionPtr hsLabel n hsSuffix
                    aException <- peek exceptionPtr
                    when (aException /= nullPtr) (error "exceptions not yet implemented")
                    methodResult <- ouStringToText result
                    deleteOUString result
                    return methodResult

`
	assert.Equal(t, want, got)
}

func TestClassMethod_Void(t *testing.T) {
	got := ClassMethod(plan(t, unoidl.Method{Name: "setFlag", ReturnType: unoidl.Void, Parameters: []unoidl.Parameter{
		{Name: "type", Type: unoidl.T("boolean")},
	}}))

	want := `    setFlag :: a -> Word8 -> IO ()
    setFlag a type' = do
        let iface = getInterface a
        with nullPtr $ \exceptionPtr -> do
            csetFlag iface exceptionPtr type'
            aException <- peek exceptionPtr
            when (aException /= nullPtr) (error "exceptions not yet implemented")
            return ()

`
	assert.Equal(t, want, got)
}

func TestClassMethod_DistinctBindings(t *testing.T) {
	tests := []struct {
		name       string
		method     unoidl.Method
		wantHead   string
		wantCall   string
		wantWithin []string
	}{
		{
			name: "names differing only in case",
			method: unoidl.Method{Name: "move", ReturnType: unoidl.Void, Parameters: []unoidl.Parameter{
				{Name: "X", Type: unoidl.T("long")},
				{Name: "x", Type: unoidl.T("long")},
			}},
			wantHead: "    move a x x' = do\n",
			wantCall: "cmove iface exceptionPtr x x'\n",
		},
		{
			name: "parameter named like a marshaled string",
			method: unoidl.Method{Name: "setLabel", ReturnType: unoidl.Void, Parameters: []unoidl.Parameter{
				{Name: "hsLabel", Type: unoidl.T("long")},
				{Name: "label", Type: unoidl.T("string")},
			}},
			wantHead:   "    setLabel a hsLabel label = do\n",
			wantCall:   "csetLabel iface exceptionPtr hsLabel hsLabel'\n",
			wantWithin: []string{"withOUString label $ \\hsLabel' -> do\n"},
		},
		{
			name: "parameter named like a called function",
			method: unoidl.Method{Name: "apply", ReturnType: unoidl.Void, Parameters: []unoidl.Parameter{
				{Name: "with", Type: unoidl.T("long")},
				{Name: "peek", Type: unoidl.T("string")},
			}},
			wantHead:   "    apply a with' peek' = do\n",
			wantCall:   "capply iface exceptionPtr with' hsPeek\n",
			wantWithin: []string{"withOUString peek' $ \\hsPeek -> do\n", "with nullPtr $ \\exceptionPtr -> do\n"},
		},
		{
			name: "parameter named like the method",
			method: unoidl.Method{Name: "count", ReturnType: unoidl.Void, Parameters: []unoidl.Parameter{
				{Name: "count", Type: unoidl.T("long")},
			}},
			wantHead: "    count a count' = do\n",
			wantCall: "ccount iface exceptionPtr count'\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassMethod(plan(t, tt.method))
			assert.Contains(t, got, tt.wantHead)
			assert.Contains(t, got, tt.wantCall)
			for _, w := range tt.wantWithin {
				assert.Contains(t, got, w)
			}
		})
	}
}

func TestAggregateMethod(t *testing.T) {
	p := plan(t, unoidl.Method{Name: "getItems", ReturnType: unoidl.T("[]string"), Parameters: []unoidl.Parameter{
		{Name: "limit", Type: unoidl.T("long")},
	}})

	assert.Equal(t, "-- hsuno: unsupported: a.b.Widget::getItems uses aggregate type []string\n\n", ForeignImport(p))

	want := "    getItems :: a -> Int32 -> IO (Ptr ())\n" +
		"    getItems _ _ = error \"a.b.Widget::getItems: aggregate types are not supported\"\n\n"
	assert.Equal(t, want, ClassMethod(p))
}

func TestModuleHeader(t *testing.T) {
	got := ModuleHeader("A.B.Widget", []string{"UNO.Binary", "", "Foreign"})
	assert.Equal(t, "module A.B.Widget where\n\nimport UNO.Binary\n\nimport Foreign\n\n", got)
}

func TestClassHeader(t *testing.T) {
	assert.Equal(t, "class Service a => Widget a where\n", ClassHeader(widgetNames()))
}

func TestException(t *testing.T) {
	names := typegen.DeriveNames(typegen.DefaultOptions(), unoidl.MustParseModulePath("a.b"), "SomeException")
	g, err := typegen.PlanGetter(names, unoidl.Member{Name: "code", Type: unoidl.T("long")})
	require.NoError(t, err)

	assert.Equal(t, "data SomeExceptionObj\n\nnewtype SomeException = SomeException (Ptr SomeExceptionObj)\n\n", ExceptionType(names))
	assert.Equal(t, "foreign import ccall \"hsuno_a_b_SomeException_getCode\" cgetCode\n"+
		"    :: Ptr SomeExceptionObj -> IO Int32\n\n", GetterImport(g))
	assert.Equal(t, "getCode :: SomeException -> IO Int32\n"+
		"getCode (SomeException ptr) = cgetCode ptr\n\n", GetterWrapper(g))
}

func TestSingleton(t *testing.T) {
	names := typegen.DeriveNames(typegen.DefaultOptions(), unoidl.MustParseModulePath("com.sun.star.util"), "theMacroExpander")

	want := `data TheMacroExpander = TheMacroExpander (Ptr UnoInterface)

instance Service TheMacroExpander where
    getInterface (TheMacroExpander ptr) = ptr

instance XMacroExpander TheMacroExpander where

`
	assert.Equal(t, want, SingletonType(names, "XMacroExpander"))
	assert.Equal(t, "theMacroExpanderNew :: IO TheMacroExpander\n"+
		"theMacroExpanderNew = TheMacroExpander <$> cTheMacroExpander_new\n\n", ConstructorWrapper(names))
	assert.Equal(t, "foreign import ccall \"hsuno_com_sun_star_util_theMacroExpander_new\" cTheMacroExpander_new\n"+
		"    :: IO (Ptr UnoInterface)\n\n", ConstructorImport(names))
}

func TestIdent(t *testing.T) {
	tests := []struct{ in, want string }{
		{"label", "label"},
		{"Label", "label"},
		{"a", "a'"},
		{"result", "result'"},
		{"data", "data'"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Ident(tt.in), tt.in)
	}
	assert.Equal(t, "hsData", marshaledIdent("data"))
}
