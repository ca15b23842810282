// Package wire holds what cmd/server and its clients agree on besides
// the generated Session stubs: the websocket endpoint and the frame
// codec used by Session.ComputeFrame.
//
// Each websocket connection is wrapped with websocket.NetConn in binary
// mode and carries one irpc endpoint.
package wire

// Path is the websocket endpoint.
const Path = "/ws"
