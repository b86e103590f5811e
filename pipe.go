package liso

import (
	"bufio"
	"os"
)

// startPipeInputReader reads newline-terminated lines from stdin and
// forwards each as a RawInput request, with trailing "\r"/"\n" already
// stripped by bufio.Scanner's line splitting. It enqueues Die once stdin
// is exhausted, since pipe mode has no further source of input.
func startPipeInputReader(reqs chan<- Request, done <-chan struct{}) {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		select {
		case reqs <- rawInputRequest(scanner.Text()):
		case <-done:
			return
		}
	}
	select {
	case reqs <- dieRequest():
	case <-done:
	}
}

// runPipeWorker is the worker loop chosen when pipeMode reports true: no
// terminal is driven, Output variants print plain text, Status/Prompt/
// Notice/Bell are silently no-ops, and every RawInput line becomes one
// Input response.
func runPipeWorker(reqs <-chan Request, resps chan<- Response) {
	defer close(resps)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for req := range reqs {
		switch req.Kind {
		case reqOutput, reqOutputEcho, reqOutputWrapped:
			if req.Line != nil {
				out.WriteString(req.Line.Text())
				out.WriteByte('\n')
				out.Flush()
			}
		case reqSuspendAndRun:
			if req.SuspendAndRun != nil {
				out.Flush()
				req.SuspendAndRun()
			}
		case reqCustom:
			resps <- Response{Kind: Custom, Custom: req.Custom}
		case reqRawInput:
			resps <- Response{Kind: Input, Text: req.RawInput}
		case reqStderrLine:
			out.WriteString(req.StderrLine)
			out.WriteByte('\n')
			out.Flush()
		case reqDie:
			out.Flush()
			resps <- Response{Kind: Dead}
			return
		}
	}
}
