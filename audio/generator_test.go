package audio

import "testing"

func TestToneStaysInUnityRange(t *testing.T) {
	buf := tone(660, sampleRateHz/10)
	if len(buf) != sampleRateHz/10 {
		t.Fatalf("length %d", len(buf))
	}
	for i, s := range buf {
		if s < -1.0 || s > 1.0 {
			t.Fatalf("sample %d = %v out of range", i, s)
		}
	}
}

func TestToneIsNotSilent(t *testing.T) {
	buf := tone(440, 1000)
	peak := 0.0
	for _, s := range buf {
		if s > peak {
			peak = s
		}
	}
	if peak < 0.9 {
		t.Errorf("peak %v, expected a full-scale sine", peak)
	}
}

func TestSweepStaysInUnityRange(t *testing.T) {
	buf := sweep(660, 1320, 2000)
	for i, s := range buf {
		if s < -1.0 || s > 1.0 {
			t.Fatalf("sample %d = %v out of range", i, s)
		}
	}
}

func TestEnvelopeTapersEnds(t *testing.T) {
	buf := make(floatBuffer, 1000)
	for i := range buf {
		buf[i] = 1.0
	}
	applyEnvelope(buf, 0.005, 0.005) // 240 samples each side

	if buf[0] != 0 {
		t.Errorf("attack start = %v, want 0", buf[0])
	}
	if last := buf[len(buf)-1]; last > 0.01 {
		t.Errorf("release end = %v, want near 0", last)
	}
	if mid := buf[len(buf)/2]; mid != 1.0 {
		t.Errorf("sustain = %v, want untouched 1.0", mid)
	}
}
