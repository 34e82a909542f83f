package naming

import (
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{"version marker", "Arm v2 Link", "Arm_Link"},
		{"surrounding and repeated spaces", "  multi   space  ", "multi_space"},
		{"base_link wins", "base_link_collision v3", "base_link"},
		{"base_link anywhere", "Robot v1:1/base_link:1", "base_link"},
		{"base_link is case sensitive", "Base_Link", "Base_Link"},
		{"occurrence path", "Robot v4:1/Upper Arm v12:1", "Robot_1_Upper_Arm_1"},
		{"reserved characters", `a/b:c*d?e"f<g>h|i+j`, "a_b_c_d_e_f_g_h_i_j"},
		{"underscore runs", "a__b___c", "a_b_c"},
		{"tabs and newlines", "wheel\t\n left", "wheel_left"},
		{"version in the middle", "gear v10 v2 housing", "gear_housing"},
		{"v without digits stays", "servo vx", "servo_vx"},
		{"backslash is kept", `left\right`, `left\right`},
		{"unicode", "Gehäuse v3 ü", "Gehäuse_ü"},
		{"leading separator control", "\x1cabc", "abc"},
		{"surrounding separator controls", "\x1fwheel\x1d", "wheel"},
		{"inner separator control", "left\x1eright", "left_right"},
		{"empty", "", ""},
		{"only spaces", "     ", ""},
		{"spelled base link", "base link v2", "base_link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.label))
		})
	}
}

func TestMeshFileName(t *testing.T) {
	assert.Equal(t, "Arm_Link.stl", MeshFileName("Arm v2 Link"))
	assert.Equal(t, "base_link.stl", MeshFileName("x/base_link"))
}

func TestComponentName(t *testing.T) {
	assert.Equal(t, "TMP_Robot_Arm", ComponentName("Robot v1/Arm"))
}

// labelGen produces labels built from fragments that trigger every rule,
// mixed with arbitrary strings.
func labelGen() gopter.Gen {
	fragment := gen.OneConstOf(
		" ", "  ", "\t", "\n", "_", "__", "/", ":", "*", "?", `"`, "<", ">", "|", "+",
		" v1", " v42", "v", "base", "link", "base_link", "Arm", "ü", `\`,
	)
	return gen.OneGenOf(
		gen.AnyString(),
		gen.SliceOf(fragment, reflect.TypeOf("")).Map(func(parts []string) string {
			return strings.Join(parts, "")
		}),
	)
}

func TestSanitizeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("output has no reserved characters", prop.ForAll(
		func(label string) bool {
			out := Sanitize(label)
			return out == BaseLink || !strings.ContainsAny(out, `/:*?"<>| +`)
		},
		labelGen(),
	))

	properties.Property("output has no surrounding whitespace or repeated separators", prop.ForAll(
		func(label string) bool {
			out := Sanitize(label)
			return out == strings.TrimSpace(out) &&
				!strings.Contains(out, "__") &&
				!strings.Contains(out, "  ")
		},
		labelGen(),
	))

	properties.Property("labels containing base_link map to base_link", prop.ForAll(
		func(prefix, suffix string) bool {
			return Sanitize(prefix+BaseLink+suffix) == BaseLink
		},
		labelGen(),
		labelGen(),
	))

	properties.Property("sanitize is idempotent", prop.ForAll(
		func(label string) bool {
			once := Sanitize(label)
			return Sanitize(once) == once
		},
		labelGen(),
	))

	properties.TestingRun(t)
}
