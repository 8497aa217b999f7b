/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

// Package main provides a stand-in for the game server debug launcher.
// It is used as the launch target of end-to-end session tests.
//
// The program accepts the launcher command line (-bf2path=, -dapport= and "+modPath <dir>"),
// serves a single Debug Adapter Protocol client on the given port and reports the active mod
// with a "bf2py" event once the client is initialized.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/google/go-dap"

	"github.com/bf2py/bf2debug/pkg/logger"
)

const (
	defaultMod = "mods/bf2"
)

type options struct {
	baseDir string
	port    int
	mod     string
}

func main() {
	log := logger.New("fakelauncher")
	defer log.Flush()

	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Error(err, "Invalid command line")
		os.Exit(2)
	}

	if err = serve(opts, log.Logger); err != nil {
		log.Error(err, "Debug server failed")
		os.Exit(1)
	}
}

func parseArgs(args []string) (options, error) {
	opts := options{mod: defaultMod}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case strings.HasPrefix(strings.ToLower(arg), "-bf2path="):
			opts.baseDir = arg[len("-bf2path="):]
		case strings.HasPrefix(strings.ToLower(arg), "-dapport="):
			port, err := strconv.Atoi(arg[len("-dapport="):])
			if err != nil {
				return opts, fmt.Errorf("invalid debug port '%s': %w", arg, err)
			}
			opts.port = port
		case strings.EqualFold(arg, "+modPath") && i+1 < len(args):
			i++
			opts.mod = args[i]
		}
	}

	if opts.baseDir == "" || opts.port == 0 {
		return opts, errors.New("both -bf2path= and -dapport= are required")
	}
	return opts, nil
}

func serve(opts options, log logr.Logger) error {
	listener, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(opts.port)))
	if err != nil {
		return err
	}
	defer func() { _ = listener.Close() }()
	log.Info("Waiting for debug client", "Address", listener.Addr().String(), "BaseDir", opts.baseDir)

	conn, err := listener.Accept()
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	s := &session{
		reader: bufio.NewReader(conn),
		writer: conn,
		opts:   opts,
		log:    log,
	}
	return s.run()
}

type session struct {
	reader *bufio.Reader
	writer io.Writer
	opts   options
	log    logr.Logger
	seq    int
}

func (s *session) run() error {
	for {
		msg, err := dap.ReadProtocolMessage(s.reader)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch req := msg.(type) {
		case *dap.InitializeRequest:
			resp := &dap.InitializeResponse{Response: s.response(&req.Request)}
			resp.Body.SupportsConfigurationDoneRequest = true
			if err = s.send(resp); err != nil {
				return err
			}
			if err = s.send(&dap.InitializedEvent{Event: s.event("initialized")}); err != nil {
				return err
			}
			if err = s.sendModPath(); err != nil {
				return err
			}

		case *dap.DisconnectRequest:
			s.log.Info("Debug client disconnected")
			return s.send(&dap.DisconnectResponse{Response: s.response(&req.Request)})

		case dap.RequestMessage:
			if err = s.send(&dap.Response{
				ProtocolMessage: s.next("response"),
				Command:         req.GetRequest().Command,
				RequestSeq:      req.GetRequest().Seq,
				Success:         true,
			}); err != nil {
				return err
			}

		default:
			s.log.V(1).Info("Ignoring message", "Type", fmt.Sprintf("%T", msg))
		}
	}
}

// The mod path event is not part of the protocol, so it is written as a raw base message.
func (s *session) sendModPath() error {
	content, err := json.Marshal(map[string]any{
		"seq":   s.next("event").Seq,
		"type":  "event",
		"event": "bf2py",
		"body": map[string]string{
			"type": "modpath",
			"data": s.opts.baseDir + ";" + s.opts.mod,
		},
	})
	if err != nil {
		return err
	}
	return dap.WriteBaseMessage(s.writer, content)
}

func (s *session) send(msg dap.Message) error {
	return dap.WriteProtocolMessage(s.writer, msg)
}

func (s *session) next(kind string) dap.ProtocolMessage {
	s.seq++
	return dap.ProtocolMessage{Seq: s.seq, Type: kind}
}

func (s *session) response(req *dap.Request) dap.Response {
	return dap.Response{
		ProtocolMessage: s.next("response"),
		Command:         req.Command,
		RequestSeq:      req.Seq,
		Success:         true,
	}
}

func (s *session) event(name string) dap.Event {
	return dap.Event{ProtocolMessage: s.next("event"), Event: name}
}
