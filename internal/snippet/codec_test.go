package snippet

import (
	"errors"
	"reflect"
	"testing"
)

func TestDecode_Empty(t *testing.T) {
	entries, err := Decode("")
	if err != nil {
		t.Fatalf("Decode(\"\") error = %v", err)
	}
	if entries != nil {
		t.Errorf("Decode(\"\") = %v, want nil", entries)
	}
}

func TestDecode_Valid(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Entry
	}{
		{
			name: "single line",
			text: "greet 'hello world'\n",
			want: []Entry{{Name: "greet", Value: "hello world"}},
		},
		{
			name: "no trailing newline",
			text: "greet 'hello world'",
			want: []Entry{{Name: "greet", Value: "hello world"}},
		},
		{
			name: "multiple lines keep order",
			text: "b '2'\na '1'\nc '3'\n",
			want: []Entry{{"b", "2"}, {"a", "1"}, {"c", "3"}},
		},
		{
			name: "surrounding whitespace trimmed",
			text: "  ls   'ls -la'   \n",
			want: []Entry{{Name: "ls", Value: "ls -la"}},
		},
		{
			name: "inner value whitespace kept",
			text: "pad ' x '\n",
			want: []Entry{{Name: "pad", Value: " x "}},
		},
		{
			name: "empty value",
			text: "blank ''\n",
			want: []Entry{{Name: "blank", Value: ""}},
		},
		{
			name: "value with inner delimiter",
			text: "q 'it's'\n",
			want: []Entry{{Name: "q", Value: "it's"}},
		},
		{
			name: "crlf line endings",
			text: "a '1'\r\nb '2'\r\n",
			want: []Entry{{"a", "1"}, {"b", "2"}},
		},
		{
			name: "name with spaces",
			text: "git log 'git log --oneline'\n",
			want: []Entry{{Name: "git log", Value: "git log --oneline"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.text)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecode_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no delimiter", "greet hello\n"},
		{"delimiter first", "'hello'\n"},
		{"whitespace-only name", "   'hello'\n"},
		{"single delimiter", "greet 'hello\n"},
		{"lone delimiter", "greet '\n"},
		{"trailing text after value", "greet 'hello' world\n"},
		{"bad line among good ones", "a '1'\nbroken\nc '3'\n"},
		{"blank line in the middle", "a '1'\n\nb '2'\n"},
		{"only a newline", "\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.text)
			if !errors.Is(err, ErrSyntax) {
				t.Fatalf("Decode() error = %v, want ErrSyntax", err)
			}
			if got != nil {
				t.Errorf("Decode() = %v, want nil on error", got)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	entries := []Entry{{"greet", "hello world"}, {"ls", "ls -la"}}
	got := Encode(entries)
	want := "greet 'hello world'\nls 'ls -la'\n"
	if got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}

	if got := Encode(nil); got != "" {
		t.Errorf("Encode(nil) = %q, want empty", got)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	entries := []Entry{
		{"x", "1"},
		{"deploy", "kubectl apply -f ."},
		{"empty", ""},
		{"grep", `grep -rn "TODO" .`},
	}

	got, err := Decode(Encode(entries))
	if err != nil {
		t.Fatalf("Decode(Encode()) error = %v", err)
	}
	if !reflect.DeepEqual(got, entries) {
		t.Errorf("round trip = %v, want %v", got, entries)
	}
}
