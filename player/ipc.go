package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/tidwall/gjson"
)

// ipcCommand is the JSON structure sent to mpv's IPC socket.
type ipcCommand struct {
	Command   []any `json:"command"`
	RequestID int   `json:"request_id,omitempty"`
}

const (
	maxRetries   = 3
	retryDelay   = 100 * time.Millisecond
	readDeadline = 1 * time.Second
)

// sendCommand sends a JSON-IPC command to mpv via its Unix domain socket.
// Transient connection errors are retried; calls are serialized.
func (m *MPV) sendCommand(command ...any) (gjson.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(retryDelay)
		}

		result, err := doSendCommand(m.socketPath, command)
		if err == nil {
			return result, nil
		}
		lastErr = err
	}

	return gjson.Result{}, fmt.Errorf("ipc command failed after %d attempts: %w", maxRetries, lastErr)
}

// doSendCommand performs a single IPC command attempt and returns the data
// member of the reply.
func doSendCommand(socketPath string, command []any) (gjson.Result, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	const requestID = 1
	payload, err := json.Marshal(ipcCommand{Command: command, RequestID: requestID})
	if err != nil {
		return gjson.Result{}, fmt.Errorf("marshal: %w", err)
	}

	// mpv requires newline-delimited JSON
	if _, err = conn.Write(append(payload, '\n')); err != nil {
		return gjson.Result{}, fmt.Errorf("write: %w", err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(readDeadline)); err != nil {
		return gjson.Result{}, fmt.Errorf("set deadline: %w", err)
	}

	// replies may be preceded by unrelated events on the same connection
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	for scanner.Scan() {
		reply := gjson.ParseBytes(scanner.Bytes())
		if reply.Get("request_id").Int() != requestID {
			continue
		}

		if status := reply.Get("error").String(); status != "" && status != "success" {
			return gjson.Result{}, fmt.Errorf("mpv error: %s", status)
		}
		return reply.Get("data"), nil
	}

	if err := scanner.Err(); err != nil {
		return gjson.Result{}, fmt.Errorf("read: %w", err)
	}
	return gjson.Result{}, fmt.Errorf("read: connection closed")
}
