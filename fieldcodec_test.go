package sx1276

import "testing"

func TestFieldCodecRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		field Field
		value byte
	}{
		{"full byte", Field{regVersion, 8, 0}, 0x12},
		{"low nibble", Field{regModemConfig1, 4, 0}, 0x0A},
		{"high nibble", Field{regModemConfig1, 4, 4}, 0x05},
		{"single bit", Field{regOpMode, 1, 7}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bus := newMockBus()
			codec := newFieldCodec(bus)
			if _, err := codec.WriteField(tc.field, tc.value); err != nil {
				t.Fatalf("WriteField: %v", err)
			}
			got, err := codec.ReadField(tc.field)
			if err != nil {
				t.Fatalf("ReadField: %v", err)
			}
			if got != tc.value {
				t.Errorf("got %#x, want %#x", got, tc.value)
			}
		})
	}
}

func TestFieldCodecPreservesOutOfFieldBits(t *testing.T) {
	bus := newMockBus()
	codec := newFieldCodec(bus)
	if _, err := codec.WriteField(Field{regModemConfig1, 4, 4}, 0xF); err != nil {
		t.Fatalf("WriteField high: %v", err)
	}
	if _, err := codec.WriteField(Field{regModemConfig1, 3, 1}, 0x5); err != nil {
		t.Fatalf("WriteField low: %v", err)
	}
	high, err := codec.ReadField(Field{regModemConfig1, 4, 4})
	if err != nil || high != 0xF {
		t.Errorf("high nibble disturbed: got %#x, err %v", high, err)
	}
}

func TestMultiByteRoundTrip(t *testing.T) {
	bus := newMockBus()
	codec := newFieldCodec(bus)
	want := uint32(0x123456)
	if _, err := codec.writeMultiByte(want, regFrfMsb, regFrfMid, regFrfLsb); err != nil {
		t.Fatalf("writeMultiByte: %v", err)
	}
	got, err := codec.readMultiByte(regFrfMsb, regFrfMid, regFrfLsb)
	if err != nil {
		t.Fatalf("readMultiByte: %v", err)
	}
	if got != want {
		t.Errorf("got %#x, want %#x", got, want)
	}
}
