package main

import (
	"testing"

	"github.com/atomicstack/scrolling-list/internal/app"
	"github.com/atomicstack/scrolling-list/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Title:     "Fruit",
			Width:     80,
			ItemsFile: "fruit.yaml",
		},
		Logging: config.Logging{Trace: true},
		Flags: map[string]string{
			"title": "Fruit",
			"width": "80",
			"items": "fruit.yaml",
		},
		Args: []string{"--title", "Fruit"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["title"] != "Fruit" {
		t.Fatalf("expected title flag Fruit, got %v", flagsValue["title"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if payload["seed"] != "fruit.yaml" {
		t.Fatalf("expected seed source fruit.yaml, got %v", payload["seed"])
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
}

func TestStartupTracePayloadDefaultsToDemoSeed(t *testing.T) {
	payload := startupTracePayload(config.Config{})
	if payload["seed"] != "demo" {
		t.Fatalf("expected demo seed, got %v", payload["seed"])
	}
}
