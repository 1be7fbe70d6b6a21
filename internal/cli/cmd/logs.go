package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/bnema/hyprwarp/internal/cli/styles"
	"github.com/bnema/hyprwarp/internal/infrastructure/config"
	"github.com/bnema/hyprwarp/internal/logging"
)

var (
	logsFollow bool
	logsLines  int
)

const (
	defaultLogsLines = 50
	followPoll       = 200 * time.Millisecond
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the hyprwarp log file",
	Long: `Print the end of the log file written when logging.file is enabled.

The file lives in $XDG_STATE_HOME/hyprwarp/hyprwarp.log.

Examples:
  hyprwarp logs               # Last 50 lines
  hyprwarp logs -n 200        # Last 200 lines
  hyprwarp logs -f            # Follow new lines`,
	RunE: runLogs,
}

var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove rotated log files",
	Long:  `Remove the rotated backups next to the active log file. The active file is kept.`,
	RunE:  runLogsClear,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsClearCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
}

func runLogs(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logPath, err := logFilePath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(logPath); errors.Is(err, fs.ErrNotExist) {
		fmt.Println(app.Theme.Subtle.Render("No log file at " + logPath + ". Set logging.file = true to write one."))
		return nil
	}

	if err := showLog(os.Stdout, logPath, logsLines, app.Theme); err != nil {
		return err
	}
	if !logsFollow {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return followLog(ctx, os.Stdout, logPath, app.Theme)
}

func logFilePath() (string, error) {
	dir, err := config.GetStateDir()
	if err != nil {
		return "", fmt.Errorf("resolve state directory: %w", err)
	}
	return filepath.Join(dir, logging.LogFileName), nil
}

// showLog writes the last n lines of the log.
func showLog(w io.Writer, logPath string, n int, theme *styles.Theme) (retErr error) {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	// Ring of the last n lines
	tail := make([]string, 0, max(n, 0))
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if n <= 0 {
			continue
		}
		if len(tail) == n {
			tail = tail[1:]
		}
		tail = append(tail, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	for _, line := range tail {
		fmt.Fprintln(w, colorizeLogLine(line, theme))
	}
	return nil
}

// followLog prints lines appended after the current end of the file until ctx is done.
func followLog(ctx context.Context, w io.Writer, logPath string, theme *styles.Theme) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	fmt.Fprintln(w, theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))

	reader := bufio.NewReader(file)
	pending := ""
	for {
		chunk, err := reader.ReadString('\n')
		pending += chunk
		if err == nil {
			fmt.Fprintln(w, colorizeLogLine(strings.TrimSuffix(pending, "\n"), theme))
			pending = ""
			continue
		}
		if !errors.Is(err, io.EOF) {
			return fmt.Errorf("read log file: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(followPoll):
		}
	}
}

// colorizeLogLine renders a JSON log line with level colors. Other lines pass through.
func colorizeLogLine(line string, theme *styles.Theme) string {
	if !gjson.Valid(line) {
		return line
	}
	entry := gjson.Parse(line)

	timeStr := entry.Get("time").String()
	if t, err := time.Parse(time.RFC3339, timeStr); err == nil {
		timeStr = t.Format(logging.ConsoleTimeFormat)
	}

	var levelStr string
	switch entry.Get("level").String() {
	case "error":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Get("level").String()
	}

	out := fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), levelStr, entry.Get("message").String())

	var fields []string
	entry.ForEach(func(key, value gjson.Result) bool {
		switch key.String() {
		case "time", "level", "message":
		default:
			fields = append(fields, theme.Subtle.Render(key.String()+"=")+value.String())
		}
		return true
	})
	if len(fields) > 0 {
		out += " " + strings.Join(fields, " ")
	}
	return out
}

func runLogsClear(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logPath, err := logFilePath()
	if err != nil {
		return err
	}

	removed, err := removeRotatedLogs(logPath)
	if err != nil {
		return err
	}
	fmt.Println(app.Theme.Subtle.Render(fmt.Sprintf("Removed %d rotated log files", removed)))
	return nil
}

// removeRotatedLogs deletes logPath.* files and returns how many were removed.
func removeRotatedLogs(logPath string) (int, error) {
	matches, err := filepath.Glob(logPath + ".*")
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			return removed, fmt.Errorf("remove %s: %w", m, err)
		}
		removed++
	}
	return removed, nil
}
