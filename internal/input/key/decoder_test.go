package key

import "testing"

func TestDecodePrintable(t *testing.T) {
	events := Decode([]byte("ab c"))
	want := []Event{RuneEvent('a'), RuneEvent('b'), RuneEvent(' '), RuneEvent('c')}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i, ev := range events {
		if ev != want[i] {
			t.Errorf("event %d = %#v, want %#v", i, ev, want[i])
		}
	}
}

func TestDecodeControlBytes(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  Key
	}{
		{"line feed", []byte{0x0A}, KeyEnter},
		{"carriage return", []byte{0x0D}, KeyEnter},
		{"backspace", []byte{0x08}, KeyBackspace},
		{"delete previous", []byte{0x7F}, KeyBackspace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := Decode(tt.input)
			if len(events) != 1 {
				t.Fatalf("got %d events, want 1", len(events))
			}
			if events[0].Key != tt.want {
				t.Errorf("key = %s, want %s", events[0].Key, tt.want)
			}
		})
	}
}

func TestDecodeEscapeSequences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Key
	}{
		{"up", "\x1b[A", KeyUp},
		{"down", "\x1b[B", KeyDown},
		{"right", "\x1b[C", KeyRight},
		{"left", "\x1b[D", KeyLeft},
		{"home", "\x1b[H", KeyHome},
		{"end", "\x1b[F", KeyEnd},
		{"delete", "\x1b[3~", KeyDelete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := Decode([]byte(tt.input))
			if len(events) != 1 {
				t.Fatalf("got %d events, want 1", len(events))
			}
			if events[0].Key != tt.want {
				t.Errorf("key = %s, want %s", events[0].Key, tt.want)
			}
		})
	}
}

func TestDecodePartialSequenceDiscarded(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"lone escape", "\x1b"},
		{"escape bracket", "\x1b["},
		{"escape bracket three", "\x1b[3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if events := Decode([]byte(tt.input)); len(events) != 0 {
				t.Errorf("got %d events, want 0", len(events))
			}
		})
	}
}

func TestDecodeUnrecognizedSequenceIgnored(t *testing.T) {
	// ESC [ Z is not in the recognized set; the following byte still decodes.
	events := Decode([]byte("\x1b[Zx"))
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if !events[0].IsRune() || events[0].Rune != 'x' {
		t.Errorf("event = %#v, want rune 'x'", events[0])
	}
}

func TestDecodeNonCSIEscapeConsumesIntroducer(t *testing.T) {
	// ESC followed by a non-bracket byte drops the escape but keeps decoding.
	events := Decode([]byte("\x1bOa"))
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Rune != 'a' {
		t.Errorf("rune = %q, want 'a'", events[0].Rune)
	}
}

func TestDecodeMixedStream(t *testing.T) {
	events := Decode([]byte("hi\x1b[D!\r"))
	want := []Event{
		RuneEvent('h'),
		RuneEvent('i'),
		SpecialEvent(KeyLeft),
		RuneEvent('!'),
		SpecialEvent(KeyEnter),
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i, ev := range events {
		if ev != want[i] {
			t.Errorf("event %d = %#v, want %#v", i, ev, want[i])
		}
	}
}

func TestDecodeUnprintableDropped(t *testing.T) {
	// Bytes outside 0x20..0x7E that are not recognized controls are dropped.
	if events := Decode([]byte{0x01, 0x02, 0x1F, 0x80, 0xFF}); len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}
