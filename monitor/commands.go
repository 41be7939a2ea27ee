package monitor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/simon/diagnostics"
	"github.com/jetsetilly/simon/hardware/leds"
	"github.com/jetsetilly/simon/hardware/timer"
)

// the number of arguments and the default value for each argument
type commandSpec struct {
	args     []int
	required int
	help     string
}

var commandSpecs = map[string]commandSpec{
	"NIGHTRIDER": {args: []int{13}, help: "NIGHTRIDER [steps]        sweep the LEDs"},
	"SOLDER":     {help: "SOLDER                     light all LEDs until a button is pressed"},
	"BUZZER":     {args: []int{int(timer.OneSecond)}, help: "BUZZER [ticks]             sound the buzzer"},
	"SEQUENCE":   {args: []int{20}, help: "SEQUENCE [length]          play a random sequence"},
	"DELAY":      {args: []int{3}, help: "DELAY [blinks]             blink all LEDs once a second"},
	"PATTERN":    {args: []int{0, int(timer.OneSecond)}, required: 1, help: "PATTERN pattern [ticks]    light an LED pattern"},
	"STATUS":     {help: "STATUS                     show the board lines"},
	"LOG":        {args: []int{10}, help: "LOG [entries]              show recent log entries"},
	"HELP":       {help: "HELP                       list commands"},
	"QUIT":       {help: "QUIT                       leave the monitor"},
}

var commandOrder = []string{
	"NIGHTRIDER", "SOLDER", "BUZZER", "SEQUENCE", "DELAY", "PATTERN", "STATUS", "LOG", "HELP", "QUIT",
}

// ErrUnrecognised is returned by parseCommand() for an unknown command
var ErrUnrecognised = errors.New("unrecognised command")

type command struct {
	name string
	args []int
}

// parseCommand splits the input into a command name and its arguments. Missing
// optional arguments are given their default value
func parseCommand(s string) (command, error) {
	p := strings.Fields(strings.ToUpper(strings.TrimSpace(s)))
	if len(p) == 0 {
		return command{}, nil
	}

	spec, ok := commandSpecs[p[0]]
	if !ok {
		return command{}, fmt.Errorf("%w: %s", ErrUnrecognised, p[0])
	}

	cmd := command{
		name: p[0],
		args: make([]int, len(spec.args)),
	}
	copy(cmd.args, spec.args)

	p = p[1:]
	if len(p) < spec.required {
		return command{}, fmt.Errorf("%s requires %d argument(s)", cmd.name, spec.required)
	}
	if len(p) > len(spec.args) {
		return command{}, fmt.Errorf("too many arguments for %s", cmd.name)
	}

	for i := range p {
		v, err := strconv.Atoi(p[i])
		if err != nil || v < 0 {
			return command{}, fmt.Errorf("%s: argument is not valid: %s", cmd.name, p[i])
		}
		cmd.args[i] = v
	}

	return cmd, nil
}

func ticks(v int) uint16 {
	return uint16(min(v, timer.Max))
}

// run the command with the diagnostics. returns the lines of output
func run(diag *diagnostics.Diagnostics, cmd command) ([]string, error) {
	switch cmd.name {
	case "NIGHTRIDER":
		err := diag.NightRider(cmd.args[0])
		if err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("night rider complete (%d steps)", cmd.args[0])}, nil

	case "SOLDER":
		err := diag.Solder()
		if err != nil {
			return nil, err
		}
		return []string{"solder test complete"}, nil

	case "BUZZER":
		diag.Buzzer(ticks(cmd.args[0]))
		return []string{fmt.Sprintf("buzzer sounded for %d ticks", ticks(cmd.args[0]))}, nil

	case "SEQUENCE":
		seq, err := diag.Sequence(cmd.args[0])
		out := []string{
			fmt.Sprintf("sequence of %d symbols", len(seq)),
			diagnostics.FormatSequence(seq),
		}
		return out, err

	case "DELAY":
		err := diag.Delay(cmd.args[0])
		if err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("delay test complete (%d blinks)", cmd.args[0])}, nil

	case "PATTERN":
		if cmd.args[0] > 255 {
			return nil, fmt.Errorf("%w: %d", leds.ErrInvalidPattern, cmd.args[0])
		}
		p := leds.Pattern(cmd.args[0])
		err := diag.Pattern(p, ticks(cmd.args[1]))
		if err != nil {
			return nil, err
		}
		ch, _ := p.Channels()
		return []string{fmt.Sprintf("pattern %d: %s", p, ch)}, nil

	case "STATUS":
		return []string{diag.Status()}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnrecognised, cmd.name)
}

func help() []string {
	h := make([]string, 0, len(commandOrder))
	for _, c := range commandOrder {
		h = append(h, commandSpecs[c].help)
	}
	return h
}
