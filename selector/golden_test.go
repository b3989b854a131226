package selector_test

import (
	"os"
	"testing"

	"gopkg.in/yaml.v3"

	"cssb/selector"
)

// chainCase is one entry of testdata/chains.yaml.
type chainCase struct {
	Name  string `yaml:"name"`
	Steps []struct {
		Op  string `yaml:"op"`
		Arg string `yaml:"arg"`
	} `yaml:"steps"`
	Want string `yaml:"want"`
}

func TestBuilder_ChainTable(t *testing.T) {
	data, err := os.ReadFile("testdata/chains.yaml")
	if err != nil {
		t.Fatalf("failed to read chains.yaml: %v", err)
	}

	var cases []chainCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatalf("failed to decode chains.yaml: %v", err)
	}
	if len(cases) == 0 {
		t.Fatal("expected chain cases in chains.yaml")
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			var sel selector.Selector
			for _, step := range c.Steps {
				switch step.Op {
				case "element":
					sel = sel.Element(step.Arg)
				case "id":
					sel = sel.ID(step.Arg)
				case "class":
					sel = sel.Class(step.Arg)
				case "attr":
					sel = sel.Attr(step.Arg)
				case "pseudoClass":
					sel = sel.PseudoClass(step.Arg)
				case "pseudoElement":
					sel = sel.PseudoElement(step.Arg)
				default:
					t.Fatalf("unknown op %q", step.Op)
				}
			}

			got, err := sel.Build()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.Want {
				t.Errorf("expected %q, got %q", c.Want, got)
			}
		})
	}
}
