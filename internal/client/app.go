package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/go-smite-api/internal/app"
	"github.com/MKhiriev/go-smite-api/internal/logger"
	"github.com/MKhiriev/go-smite-api/internal/workers"
	"github.com/MKhiriev/go-smite-api/pkg/smite"
	"github.com/charmbracelet/lipgloss"
)

// Errors returned by [App.Run] for commands that did not succeed.
var (
	ErrNoMethod       = errors.New(app.MsgNoMethodProvided)
	ErrPingFailed     = errors.New(app.MsgPingFailed)
	ErrSessionInvalid = errors.New(app.MsgSessionInvalid)
)

const (
	commandPing        = "ping"
	commandTestSession = "testsession"
)

// Options are the command switches of smitectl.
type Options struct {
	// Poll repeats the call at this interval until the context is done.
	Poll time.Duration
	// Copy puts the last response body on the clipboard.
	Copy bool
	// ListMethods prints the endpoint table instead of calling the API.
	ListMethods bool
}

// App runs one smitectl command.
type App struct {
	api    API
	keeper *workers.SessionKeeper
	opts   Options
	out    io.Writer
	status io.Writer
	copyFn func(string) error
	log    *logger.Logger
}

// NewApp builds the runtime. Bodies go to out, styled status lines to
// status. copyFn is used for -copy; keeper may be nil when polling is not
// needed.
func NewApp(api API, keeper *workers.SessionKeeper, opts Options, out, status io.Writer, copyFn func(string) error, log *logger.Logger) (*App, error) {
	if api == nil {
		return nil, errors.New("nil api client")
	}
	if out == nil || status == nil {
		return nil, errors.New("nil output writer")
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{
		api:    api,
		keeper: keeper,
		opts:   opts,
		out:    out,
		status: status,
		copyFn: copyFn,
		log:    log,
	}, nil
}

// Run executes args[0] with args[1:] as endpoint arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if a.opts.ListMethods {
		a.printMethods()
		return nil
	}

	if len(args) == 0 {
		a.printStatus(errorStyle, app.MsgNoMethodProvided)
		return ErrNoMethod
	}

	method, params := strings.ToLower(strings.TrimSpace(args[0])), args[1:]

	if method == commandPing {
		return a.ping(ctx)
	}

	if method != commandTestSession {
		if _, ok := smite.LookupEndpoint(method); !ok {
			a.printStatus(errorStyle, fmt.Sprintf("%s %q", app.MsgUnknownMethod, method))
			return fmt.Errorf("%w: %q", smite.ErrUnknownMethod, method)
		}
	}

	if err := a.api.CreateSession(ctx); err != nil {
		a.printStatus(errorStyle, app.MsgSessionFailed+": "+err.Error())
		return err
	}
	if a.keeper != nil {
		a.keeper.MarkCreated()
	}
	a.printStatus(okStyle, app.MsgSessionCreated)

	if method == commandTestSession {
		return a.testSession(ctx)
	}

	if a.opts.Poll <= 0 {
		return a.call(ctx, method, params)
	}

	return a.poll(ctx, method, params)
}

func (a *App) ping(ctx context.Context) error {
	if !a.api.Ping(ctx) {
		a.printStatus(errorStyle, app.MsgPingFailed)
		return ErrPingFailed
	}
	a.printStatus(okStyle, app.MsgPingSucceeded)
	return nil
}

func (a *App) testSession(ctx context.Context) error {
	if !a.api.TestSession(ctx) {
		a.printStatus(errorStyle, app.MsgSessionInvalid)
		return ErrSessionInvalid
	}
	a.printStatus(okStyle, app.MsgSessionValid)
	return nil
}

func (a *App) call(ctx context.Context, method string, params []string) error {
	body, err := a.api.Call(ctx, method, params...)
	if err != nil {
		a.printStatus(errorStyle, app.MsgRequestFailed+": "+err.Error())
		return err
	}

	fmt.Fprintln(a.out, body)

	if a.opts.Copy && a.copyFn != nil {
		if err = a.copyFn(body); err != nil {
			a.log.Warn().Err(err).Msg("clipboard write failed")
			a.printStatus(errorStyle, app.MsgCopyFailed)
		} else {
			a.printStatus(helpStyle, app.MsgCopied)
		}
	}

	return nil
}

// poll repeats the call every Poll interval while the keeper maintains the
// session. Failed calls are reported and polling continues.
func (a *App) poll(ctx context.Context, method string, params []string) error {
	ws := workers.NewWorkers()
	if a.keeper != nil {
		ws = workers.NewWorkers(a.keeper)
	}
	ws.Start(ctx)
	defer ws.Stop()

	a.printStatus(helpStyle, app.MsgPolling)

	t := time.NewTicker(a.opts.Poll)
	defer t.Stop()

	for {
		if err := a.call(ctx, method, params); err != nil {
			a.log.Warn().Err(err).Str("method", method).Msg("poll call failed")
		}

		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
	}
}

func (a *App) printMethods() {
	fmt.Fprintln(a.out, titleStyle.Render("Methods"))
	for _, ep := range smite.Endpoints() {
		line := "  " + ep.Usage()
		if ep.Cacheable {
			line += helpStyle.Render("  (cached)")
		}
		fmt.Fprintln(a.out, line)
	}
	fmt.Fprintln(a.out, "  "+commandPing)
	fmt.Fprintln(a.out, "  "+commandTestSession)
}

func (a *App) printStatus(style lipgloss.Style, msg string) {
	fmt.Fprintln(a.status, style.Render(msg))
}
