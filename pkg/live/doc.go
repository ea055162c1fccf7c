// Package live implements bidirectional streaming sessions against the
// generative language v1beta websocket API.
//
// A session is created with Connect, which performs the setup handshake
// before returning. Server activity arrives in order on the Events channel,
// beginning with SetupCompleteEvent and ending with exactly one terminal
// event, ClosedEvent or ErrorEvent, after which the channel is closed.
//
//	session, err := live.Connect(ctx, apiKey, live.Setup{Model: "models/gemini-2.0-flash-exp"})
//	if err != nil {
//		return err
//	}
//	defer session.Close()
//	if err := session.SendText("Hello"); err != nil {
//		return err
//	}
//	for event := range session.Events() {
//		switch e := event.(type) {
//		case live.ContentEvent:
//			fmt.Print(e.Text())
//		case live.ErrorEvent:
//			return e.Err
//		}
//	}
package live
