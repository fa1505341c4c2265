package widget

import "testing"

func TestNodeEqual(t *testing.T) {
	base := Bar("bar", Props{"color": "primary"}, Trigger("t", "go"), Trigger("u", "back"))
	type testcase struct {
		name  string
		other Node
		equal bool
	}
	for _, tc := range []testcase{
		{
			name:  "identical",
			other: Bar("bar", Props{"color": "primary"}, Trigger("t", "go"), Trigger("u", "back")),
			equal: true,
		},
		{
			name:  "different prop value",
			other: Bar("bar", Props{"color": "secondary"}, Trigger("t", "go"), Trigger("u", "back")),
		},
		{
			name:  "extra prop",
			other: Bar("bar", Props{"color": "primary", "position": "static"}, Trigger("t", "go"), Trigger("u", "back")),
		},
		{
			name:  "missing child",
			other: Bar("bar", Props{"color": "primary"}, Trigger("t", "go")),
		},
		{
			name:  "child order",
			other: Bar("bar", Props{"color": "primary"}, Trigger("u", "back"), Trigger("t", "go")),
		},
		{
			name:  "label",
			other: Bar("bar", Props{"color": "primary"}, Trigger("t", "stop"), Trigger("u", "back")),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Equal(tc.other); got != tc.equal {
				t.Errorf("expected Equal to be %v:\n%s\n%s", tc.equal, base, tc.other)
			}
		})
	}
}

func TestNodeString(t *testing.T) {
	tree := Bar("appBar", Props{"position": "static", "color": "primary"}, Trigger("menuButton", "Open"))
	want := "bar appBar color=primary position=static\n  trigger menuButton \"Open\"\n"
	if got := tree.String(); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}
