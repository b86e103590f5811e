package liso

import "time"

// requestKind tags which variant a Request carries.
type requestKind int

const (
	reqOutput requestKind = iota
	reqOutputEcho
	reqOutputWrapped
	reqStatus
	reqPrompt
	reqNotice
	reqBell
	reqSuspendAndRun
	reqDie
	reqCustom
	reqRawInput
	reqTerminalEvent
	reqHeartbeat
	reqBumpHistory
	reqSetCompletor
	reqStderrLine
)

// Request is a single message sent to the worker, from either the public
// API or one of the auxiliary threads (raw input, heartbeat, stderr
// capture). Exactly one field group is populated, per Kind.
type Request struct {
	Kind requestKind

	Line *Line // Output, OutputEcho, OutputWrapped, Status (nil clears), Notice

	PromptLine     *Line
	PromptInput    bool
	PromptClear    bool
	NoticeDuration time.Duration
	SuspendAndRun  func()
	Custom         interface{}
	RawInput       string
	TerminalEvent  Event
	Completor      Completor
	StderrLine     string
}

func outputRequest(l *Line) Request        { return Request{Kind: reqOutput, Line: l} }
func outputEchoRequest(l *Line) Request    { return Request{Kind: reqOutputEcho, Line: l} }
func outputWrappedRequest(l *Line) Request { return Request{Kind: reqOutputWrapped, Line: l} }
func statusRequest(l *Line) Request        { return Request{Kind: reqStatus, Line: l} }
func noticeRequest(l *Line, d time.Duration) Request {
	return Request{Kind: reqNotice, Line: l, NoticeDuration: d}
}
func promptRequest(l *Line, inputAllowed, clearInput bool) Request {
	return Request{Kind: reqPrompt, PromptLine: l, PromptInput: inputAllowed, PromptClear: clearInput}
}
func bellRequest() Request { return Request{Kind: reqBell} }
func suspendAndRunRequest(f func()) Request {
	return Request{Kind: reqSuspendAndRun, SuspendAndRun: f}
}
func dieRequest() Request                 { return Request{Kind: reqDie} }
func customRequest(v interface{}) Request { return Request{Kind: reqCustom, Custom: v} }
func rawInputRequest(s string) Request    { return Request{Kind: reqRawInput, RawInput: s} }
func terminalEventRequest(e Event) Request {
	return Request{Kind: reqTerminalEvent, TerminalEvent: e}
}
func heartbeatRequest() Request       { return Request{Kind: reqHeartbeat} }
func bumpHistoryRequest() Request     { return Request{Kind: reqBumpHistory} }
func setCompletorRequest(c Completor) Request {
	return Request{Kind: reqSetCompletor, Completor: c}
}
func stderrLineRequest(s string) Request { return Request{Kind: reqStderrLine, StderrLine: s} }
