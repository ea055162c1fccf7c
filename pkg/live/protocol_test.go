package live

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/veldtlabs/genlive/pkg/core"
	"github.com/veldtlabs/genlive/pkg/core/types"
)

func TestClientFrame_SetupEnvelopeShape(t *testing.T) {
	t.Parallel()

	frame := clientFrame{Setup: &Setup{Model: "models/gemini-2.0-flash-exp"}}
	data, err := json.Marshal(frame)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"setup":{"model":"models/gemini-2.0-flash-exp"}}`
	if string(data) != want {
		t.Fatalf("frame=%s, want %s", data, want)
	}
}

func TestClientFrame_ClientContentIncludesTurnCompleteFalse(t *testing.T) {
	t.Parallel()

	frame := clientFrame{ClientContent: &ClientContent{
		Turns:        []types.Content{types.UserText("hi")},
		TurnComplete: false,
	}}
	data, err := json.Marshal(frame)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"turnComplete":false`) {
		t.Fatalf("turnComplete must always be present, got %s", data)
	}
}

func TestClientFrame_RealtimeInputVariants(t *testing.T) {
	t.Parallel()

	end := true
	cases := []struct {
		name string
		in   RealtimeInput
		want string
	}{
		{"text", RealtimeInput{Text: "hello"}, `{"realtimeInput":{"text":"hello"}}`},
		{"audio", RealtimeInput{Audio: &types.Blob{MIMEType: "audio/pcm;rate=16000", Data: []byte{0, 0}}}, `{"realtimeInput":{"audio":{"mimeType":"audio/pcm;rate=16000","data":"AAA="}}}`},
		{"activityStart", RealtimeInput{ActivityStart: &ActivityMarker{}}, `{"realtimeInput":{"activityStart":{}}}`},
		{"activityEnd", RealtimeInput{ActivityEnd: &ActivityMarker{}}, `{"realtimeInput":{"activityEnd":{}}}`},
		{"audioStreamEnd", RealtimeInput{AudioStreamEnd: &end}, `{"realtimeInput":{"audioStreamEnd":true}}`},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			data, err := json.Marshal(clientFrame{RealtimeInput: &tc.in})
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(data) != tc.want {
				t.Fatalf("frame=%s, want %s", data, tc.want)
			}
		})
	}
}

func TestDecodeServerFrame_SetupComplete(t *testing.T) {
	t.Parallel()

	ev, err := decodeServerFrame([]byte(`{"setupComplete":{}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := ev.(SetupCompleteEvent); !ok {
		t.Fatalf("event=%T, want SetupCompleteEvent", ev)
	}
}

func TestDecodeServerFrame_ServerContentWithUsageSibling(t *testing.T) {
	t.Parallel()

	payload := `{
		"serverContent": {
			"modelTurn": {"role": "model", "parts": [{"text": "hello"}]},
			"turnComplete": true
		},
		"usageMetadata": {"promptTokenCount": 3, "totalTokenCount": 10}
	}`
	ev, err := decodeServerFrame([]byte(payload))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	content, ok := ev.(ContentEvent)
	if !ok {
		t.Fatalf("event=%T, want ContentEvent", ev)
	}
	if content.Text() != "hello" {
		t.Fatalf("text=%q, want %q", content.Text(), "hello")
	}
	if !content.TurnComplete {
		t.Fatalf("expected turnComplete")
	}
	if content.Usage == nil || content.Usage.TotalTokenCount != 10 {
		t.Fatalf("usage=%+v, want totalTokenCount=10", content.Usage)
	}
}

func TestDecodeServerFrame_Interrupted(t *testing.T) {
	t.Parallel()

	ev, err := decodeServerFrame([]byte(`{"serverContent":{"interrupted":true}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	content, ok := ev.(ContentEvent)
	if !ok || !content.Interrupted {
		t.Fatalf("event=%#v, want interrupted ContentEvent", ev)
	}
}

func TestDecodeServerFrame_ToolCall(t *testing.T) {
	t.Parallel()

	payload := `{"toolCall":{"functionCalls":[{"id":"fc_1","name":"get_weather","args":{"city":"Paris"}}]}}`
	ev, err := decodeServerFrame([]byte(payload))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	call, ok := ev.(ToolCallEvent)
	if !ok {
		t.Fatalf("event=%T, want ToolCallEvent", ev)
	}
	if len(call.FunctionCalls) != 1 || call.FunctionCalls[0].Name != "get_weather" {
		t.Fatalf("calls=%+v", call.FunctionCalls)
	}
}

func TestDecodeServerFrame_ToolCallCancellation(t *testing.T) {
	t.Parallel()

	ev, err := decodeServerFrame([]byte(`{"toolCallCancellation":{"ids":["fc_1","fc_2"]}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	cancel, ok := ev.(ToolCallCancellationEvent)
	if !ok || len(cancel.IDs) != 2 {
		t.Fatalf("event=%#v, want cancellation with two ids", ev)
	}
}

func TestDecodeServerFrame_GoAwayAndResumption(t *testing.T) {
	t.Parallel()

	ev, err := decodeServerFrame([]byte(`{"goAway":{"timeLeft":"10s"}}`))
	if err != nil {
		t.Fatalf("decode goAway: %v", err)
	}
	if away, ok := ev.(GoAwayEvent); !ok || away.TimeLeft != "10s" {
		t.Fatalf("event=%#v, want GoAwayEvent 10s", ev)
	}

	ev, err = decodeServerFrame([]byte(`{"sessionResumptionUpdate":{"newHandle":"h1","resumable":true}}`))
	if err != nil {
		t.Fatalf("decode resumption: %v", err)
	}
	update, ok := ev.(SessionResumptionUpdateEvent)
	if !ok || update.NewHandle != "h1" || !update.Resumable {
		t.Fatalf("event=%#v", ev)
	}
}

func TestDecodeServerFrame_UnknownVariantIsMalformed(t *testing.T) {
	t.Parallel()

	_, err := decodeServerFrame([]byte(`{"somethingNew":{}}`))
	if err == nil {
		t.Fatalf("expected malformed frame error")
	}
	if typ, ok := core.TypeOf(err); !ok || typ != core.ErrMalformedFrame {
		t.Fatalf("type=%v, want %v", typ, core.ErrMalformedFrame)
	}
}

func TestDecodeServerFrame_InvalidJSONIsMalformed(t *testing.T) {
	t.Parallel()

	_, err := decodeServerFrame([]byte(`{not json`))
	if err == nil {
		t.Fatalf("expected malformed frame error")
	}
	typ, ok := core.TypeOf(err)
	if !ok || typ != core.ErrMalformedFrame {
		t.Fatalf("type=%v, want %v", typ, core.ErrMalformedFrame)
	}
	var coreErr *core.Error
	if !errors.As(err, &coreErr) || coreErr.Fatal() {
		t.Fatalf("malformed frame errors must be non-fatal")
	}
}
