package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/pcomb/datum"
)

const sample = `
/* service configuration */
@public
server = {host: "local\thost", ports: [80, 443], retry: backoff.exp(2, -1.5e3)};
empty = [];
`

func parseSample(t *testing.T) *datum.Document {
	t.Helper()
	doc, err := datum.Parse(sample)
	if err != nil {
		t.Fatalf("datum.Parse() error = %v", err)
	}
	return doc
}

func TestNew(t *testing.T) {
	for _, name := range Names {
		if _, err := New(name, &bytes.Buffer{}); err != nil {
			t.Errorf("New(%q) error = %v", name, err)
		}
	}
	if _, err := New("xml", &bytes.Buffer{}); err == nil {
		t.Error("New(xml) error = nil, want error")
	}
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(parseSample(t)); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var tree treeDocument
	if err := json.Unmarshal(buf.Bytes(), &tree); err != nil {
		t.Fatalf("json.Unmarshal() error = %v\n%s", err, buf.String())
	}
	if len(tree.Bindings) != 2 {
		t.Fatalf("len(Bindings) = %d, want 2", len(tree.Bindings))
	}

	server := tree.Bindings[0]
	if server.Name != "server" || len(server.Annotations) != 1 || server.Annotations[0] != "public" {
		t.Errorf("server = %+v", server)
	}
	if server.Value.Kind != "record" || len(server.Value.Fields) != 3 {
		t.Fatalf("server value = %+v, want record with 3 fields", server.Value)
	}
	retry := server.Value.Fields[2].Value
	if retry.Kind != "reference" || retry.Text != "backoff.exp" || !retry.Call || len(retry.Items) != 2 {
		t.Errorf("retry = %+v", retry)
	}
}

func TestYAMLEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewYAMLEncoder(&buf).Encode(parseSample(t)); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var tree treeDocument
	if err := yaml.Unmarshal(buf.Bytes(), &tree); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v\n%s", err, buf.String())
	}
	if got := tree.Bindings[0].Value.Fields[0].Value.Text; got != "local\thost" {
		t.Errorf("host = %q, want %q", got, "local\thost")
	}
	if !strings.Contains(buf.String(), "name: server") {
		t.Errorf("output missing binding name:\n%s", buf.String())
	}
}

func TestTextEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTextEncoder(&buf).Encode(parseSample(t)); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := `@public server = {host: "local\thost", ports: [80, 443], retry: backoff.exp(2, -1.5e3)};
empty = [];
`
	if got := buf.String(); got != want {
		t.Errorf("Encode() =\n%s\nwant\n%s", got, want)
	}
}

func renderText(t *testing.T, doc *datum.Document) string {
	t.Helper()
	var buf bytes.Buffer
	if err := NewTextEncoder(&buf).Encode(doc); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return buf.String()
}

func TestTextRoundTrip(t *testing.T) {
	first := renderText(t, parseSample(t))

	doc, err := datum.Parse(first)
	if err != nil {
		t.Fatalf("datum.Parse(%q) error = %v", first, err)
	}
	second := renderText(t, doc)
	if first != second {
		t.Errorf("round trip changed output:\n%s\n%s", first, second)
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", `"plain"`},
		{"a\"b", `"a\"b"`},
		{`back\slash`, `"back\\slash"`},
		{"nul\x00", `"nul\0"`},
		{"ünï", `"ünï"`},
	}

	for _, tt := range tests {
		got := Quote(tt.in)
		if got != tt.want {
			t.Errorf("Quote(%q) = %s, want %s", tt.in, got, tt.want)
		}
		v, err := datum.ParseValue(got)
		if err != nil {
			t.Errorf("ParseValue(%s) error = %v", got, err)
			continue
		}
		if s := v.(*datum.String).Value; s != tt.in {
			t.Errorf("ParseValue(%s) = %q, want %q", got, s, tt.in)
		}
	}
}
