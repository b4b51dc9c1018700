package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rootsec1/meals-on-heels/internal/nearby"
	"github.com/rootsec1/meals-on-heels/internal/types"
	"github.com/urfave/cli/v2"
)

func testResults() []types.SearchResult {
	trucks := []types.FoodTruck{
		{LocationID: 2, Applicant: "Truck 2", FacilityType: "Truck", Address: "456 Mission Street", Status: "APPROVED", Latitude: 37.7849, Longitude: -122.4094},
		{LocationID: 1, Applicant: "Truck 1", FacilityType: "Push Cart", Address: "123 Market Street", Status: "APPROVED", Latitude: 37.7749, Longitude: -122.4194},
	}
	return nearby.SearchNearby(37.7749, -122.4194, 5, trucks)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := writeTable(&buf, testResults()); err != nil {
		t.Fatalf("writeTable() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "DISTANCE_KM") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "0.00") || !strings.Contains(lines[1], "Truck 1") {
		t.Errorf("first row = %q, want Truck 1 at 0.00", lines[1])
	}
	if !strings.Contains(lines[2], "Truck 2") {
		t.Errorf("second row = %q, want Truck 2", lines[2])
	}
	if lines[3] != "2 food trucks found" {
		t.Errorf("footer = %q", lines[3])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, []types.SearchResult{}); err != nil {
		t.Fatalf("writeJSON() error = %v", err)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &body); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if string(body["data"]) != "[]" || string(body["error"]) != "null" {
		t.Errorf("body = %s, want empty data and null error", buf.String())
	}
}

func TestSearchAction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trucks.csv")
	data := "locationid,Applicant,FacilityType,Latitude,Longitude\n" +
		"1,Truck 1,Push Cart,37.7749,-122.4194\n" +
		"3,Truck 3,Cart,37.8049,-122.2711\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		wantErr  bool
		contains []string
		excludes []string
	}{
		{
			name:     "default radius",
			args:     []string{"--lat", "37.7749", "--lng", "-122.4194"},
			contains: []string{"Truck 1", "1 food trucks found"},
			excludes: []string{"Truck 3"},
		},
		{
			name:     "wide radius as json",
			args:     []string{"--lat", "37.7749", "--lng", "-122.4194", "--radius", "15", "--json"},
			contains: []string{`"applicant": "Truck 1"`, `"applicant": "Truck 3"`, `"distance": 13.46`},
		},
		{
			name:    "invalid radius",
			args:    []string{"--lat", "37.7749", "--lng", "-122.4194", "--radius", "-3"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			app := &cli.App{Writer: &out}

			set := flag.NewFlagSet("search", flag.ContinueOnError)
			for _, f := range searchCommand().Flags {
				if err := f.Apply(set); err != nil {
					t.Fatalf("Apply() error = %v", err)
				}
			}
			set.String("data", path, "")
			if err := set.Parse(tt.args); err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			err := searchAction(cli.NewContext(app, set, nil))
			if (err != nil) != tt.wantErr {
				t.Fatalf("searchAction() error = %v, wantErr %v", err, tt.wantErr)
			}

			for _, s := range tt.contains {
				if !strings.Contains(out.String(), s) {
					t.Errorf("output missing %q:\n%s", s, out.String())
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(out.String(), s) {
					t.Errorf("output contains %q:\n%s", s, out.String())
				}
			}
		})
	}
}
