// Package seed describes the mutations applied to a list before the UI
// starts, either the built-in demo or a YAML file.
package seed

import (
	"fmt"
	"os"
	"strings"

	"github.com/atomicstack/scrolling-list/internal/scrollinglist"
	"gopkg.in/yaml.v3"
)

const (
	OpAdd    = "add"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Step is one mutation. Index is ignored for OpAdd.
type Step struct {
	Op    string            `yaml:"op"`
	Index int               `yaml:"index,omitempty"`
	Item  map[string]string `yaml:"item,omitempty"`
}

// Script is the seed file format. Items are appended first, then Steps run
// in order.
type Script struct {
	Title string              `yaml:"title,omitempty"`
	Items []map[string]string `yaml:"items,omitempty"`
	Steps []Step              `yaml:"steps,omitempty"`
}

// Target is the mutation surface a script is applied to.
type Target interface {
	AddItem(item scrollinglist.Item)
	UpdateItem(index int, item scrollinglist.Item) error
	DeleteItem(index int) error
}

// Demo adds four fruit, deletes "Monkey" and renames "Blood Orange".
func Demo() Script {
	item := func(text string) map[string]string {
		return map[string]string{"text": text, "info": ""}
	}
	return Script{
		Steps: []Step{
			{Op: OpAdd, Item: item("Apple")},
			{Op: OpAdd, Item: item("Banana")},
			{Op: OpAdd, Item: item("Monkey")},
			{Op: OpAdd, Item: item("Blood Orange")},
			{Op: OpDelete, Index: 2},
			{Op: OpUpdate, Index: 2, Item: item("Orange")},
		},
	}
}

// Load reads and validates a YAML script.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read seed file: %w", err)
	}
	script, err := Parse(data)
	if err != nil {
		return Script{}, fmt.Errorf("%s: %w", path, err)
	}
	return script, nil
}

// Parse decodes and validates a YAML script.
func Parse(data []byte) (Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return Script{}, fmt.Errorf("decode seed: %w", err)
	}
	for i := range script.Steps {
		op := strings.ToLower(strings.TrimSpace(script.Steps[i].Op))
		switch op {
		case OpAdd, OpUpdate, OpDelete:
			script.Steps[i].Op = op
		default:
			return Script{}, fmt.Errorf("step %d: unknown op %q", i+1, script.Steps[i].Op)
		}
	}
	return script, nil
}

// Len is the number of mutations the script performs.
func (s Script) Len() int {
	return len(s.Items) + len(s.Steps)
}

// Apply runs the script against t and stops at the first failing step.
func (s Script) Apply(t Target) error {
	for _, item := range s.Items {
		t.AddItem(scrollinglist.Item(item))
	}
	for i, step := range s.Steps {
		var err error
		switch step.Op {
		case OpAdd:
			t.AddItem(scrollinglist.Item(step.Item))
		case OpUpdate:
			err = t.UpdateItem(step.Index, scrollinglist.Item(step.Item))
		case OpDelete:
			err = t.DeleteItem(step.Index)
		default:
			err = fmt.Errorf("unknown op %q", step.Op)
		}
		if err != nil {
			return fmt.Errorf("seed step %d (%s): %w", i+1, step.Op, err)
		}
	}
	return nil
}
