package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"git.lost.host/meutraa/beats/internal/chart"
	"git.lost.host/meutraa/beats/internal/clock"
	"git.lost.host/meutraa/beats/internal/config"
	"git.lost.host/meutraa/beats/internal/engine"
	"git.lost.host/meutraa/beats/internal/game"
	"git.lost.host/meutraa/beats/internal/input"
	"git.lost.host/meutraa/beats/internal/parser"
	"git.lost.host/meutraa/beats/internal/session"
	"git.lost.host/meutraa/beats/internal/theme"
	"golang.org/x/term"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app   = kingpin.New("beats", "Rhythm game timing and scoring core")
	flags = config.Register(app)

	simulateCmd    = app.Command("simulate", "Play a chart headless from an input script or autoplay")
	simulateChart  = simulateCmd.Arg("chart", "Chart file").Required().ExistingFile()
	simulateInputs = simulateCmd.Flag("inputs", "Input script, one \"time lane\" press per line").Short('i').ExistingFile()
	simulateJitter = simulateCmd.Flag("jitter", "Autoplay timing jitter in seconds").Default("0").Float64()
	simulateSeed   = simulateCmd.Flag("seed", "Autoplay jitter seed").Default("1").Int64()
	simulateDebt   = simulateCmd.Flag("drift-debt", "Starting drift debt").Default("0").Float64()
	simulateRecord = simulateCmd.Flag("record", "Write the presses played to an input script").String()

	playCmd   = app.Command("play", "Tap along to a chart in the terminal")
	playChart = playCmd.Arg("chart", "Chart file").Required().ExistingFile()

	generateCmd   = app.Command("generate", "Write a generated chart")
	generateOut   = generateCmd.Arg("out", "Output chart file, - for stdout").Required().String()
	generateBPM   = generateCmd.Flag("bpm", "Beats per minute").Default("120").Float64()
	generateStart = generateCmd.Flag("start", "First beat in seconds").Default("2").Float64()
	generateEnd   = generateCmd.Flag("end", "Last beat in seconds").Default("30").Float64()
	generateMax   = generateCmd.Flag("max-notes", "Note limit, 0 for none").Default("0").Int()
	generateSeed  = generateCmd.Flag("seed", "Lane seed").Default("1").Int64()
	generateID    = generateCmd.Flag("id", "Chart id").Default("generated").String()
)

func main() {
	app.Version("0.3.0")
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	initLogger(*flags.Debug)

	if err := run(cmd); nil != err {
		log.Fatalln(err)
	}
}

func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func run(cmd string) error {
	switch cmd {
	case simulateCmd.FullCommand():
		return simulate()
	case playCmd.FullCommand():
		return play()
	case generateCmd.FullCommand():
		return generate()
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func loadSession(file string, seed int64) (*session.Session, error) {
	var psr parser.Parser = &parser.DefaultParser{}
	c, err := psr.Parse(file)
	if nil != err {
		return nil, err
	}
	cfg, err := flags.EngineConfig(c.Lanes, c.ApproachTimeSeconds)
	if nil != err {
		return nil, err
	}
	return session.New(c, session.Options{
		Config: cfg,
		Keep:   *flags.Keep,
		Seed:   seed,
		Logger: slog.Default(),
	})
}

func simulate() error {
	s, err := loadSession(*simulateChart, time.Now().UnixNano())
	if nil != err {
		return err
	}
	s.SetDriftDebt(*simulateDebt)

	var presses []input.Event
	if *simulateInputs != "" {
		f, err := os.Open(*simulateInputs)
		if nil != err {
			return err
		}
		presses, err = input.ReadScript(f)
		f.Close()
		if nil != err {
			return fmt.Errorf("unable to read %v: %w", *simulateInputs, err)
		}
	} else {
		presses = input.Autoplay(chart.ToNoteEvents(s.Chart()), *simulateJitter, *simulateSeed)
	}

	if *simulateRecord != "" {
		if err := recordPresses(*simulateRecord, presses); nil != err {
			return err
		}
	}

	slog.Info("simulating", "chart", s.Chart().ID, "presses", len(presses), "session", s.ID.String())
	result, err := s.Replay(presses, flags.FramePeriod.Seconds())
	if nil != err {
		return err
	}
	printResult(os.Stdout, &theme.DefaultTheme{Plain: !term.IsTerminal(int(os.Stdout.Fd()))}, s.Chart(), result)
	return nil
}

func recordPresses(file string, presses []input.Event) error {
	f, err := os.Create(file)
	if nil != err {
		return err
	}
	if err := input.WriteScript(f, presses); nil != err {
		f.Close()
		return fmt.Errorf("unable to write %v: %w", file, err)
	}
	return f.Close()
}

func play() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("play needs an interactive terminal")
	}
	s, err := loadSession(*playChart, time.Now().UnixNano())
	if nil != err {
		return err
	}

	var th theme.Theme = &theme.DefaultTheme{}
	s.OnJudge(func(j engine.Judged) {
		// The terminal is raw while playing, lines need a carriage return
		fmt.Printf("%s %s %+7.1f ms  combo %4d  score %7d\r\n",
			th.RenderLane(j.Lane), th.RenderJudgement(j.Judgement), j.Offset*1000, j.Score.Combo, j.Score.Score)
	})

	clk := clock.NewWall(*flags.Delay, 1)
	kb := input.Keyboard{Keys: *flags.Keys, Clock: clk}
	events := make(chan input.Event, 128)
	restore, err := kb.Listen(events)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := restore(); nil != err {
			slog.Error("unable to close keyboard", "err", err)
		}
	}()

	fmt.Printf("%v - %v, keys %q, Esc to quit\r\n", s.Chart().Title, s.Chart().Artist, *flags.Keys)

	ticker := time.NewTicker(*flags.FramePeriod)
	defer ticker.Stop()

	last := clk.NowSeconds()
	tick := func(now float64, presses []int) error {
		// Key events are stamped on another goroutine and can trail a frame
		if now < last {
			now = last
		}
		last = now
		return s.Tick(now, presses)
	}

	for !s.Finished() {
		select {
		case e := <-events:
			if e.Quit {
				printResult(os.Stdout, th, s.Chart(), s.Result())
				return nil
			}
			if err := tick(e.Time, []int{e.Lane}); nil != err {
				return err
			}
		case <-ticker.C:
			if err := tick(clk.NowSeconds(), nil); nil != err {
				return err
			}
		}
	}
	printResult(os.Stdout, th, s.Chart(), s.Result())
	return nil
}

func generate() error {
	cfg, err := flags.EngineConfig(0, 0)
	if nil != err {
		return err
	}
	c := chart.Generate(chart.GenerateOptions{
		ID:       *generateID,
		Title:    *generateID,
		BPM:      *generateBPM,
		Start:    *generateStart,
		End:      *generateEnd,
		Lanes:    cfg.Lanes,
		MinGap:   cfg.MinNoteGapSeconds,
		MaxNotes: *generateMax,
		Approach: cfg.ApproachTimeSeconds,
		Seed:     *generateSeed,
	})

	var w io.Writer = os.Stdout
	if *generateOut != "-" {
		f, err := os.Create(*generateOut)
		if nil != err {
			return err
		}
		defer f.Close()
		w = f
	}
	var psr parser.Parser = &parser.DefaultParser{}
	if err := psr.Encode(w, c); nil != err {
		return fmt.Errorf("unable to write chart: %w", err)
	}
	slog.Info("generated chart", "notes", len(c.Notes), "out", *generateOut)
	return nil
}

func printResult(w io.Writer, th theme.Theme, c *game.Chart, r session.Result) {
	fmt.Fprintf(w, "\r\n%v (%v notes)\r\n", c.Title, len(c.Notes))
	for _, j := range game.Judgements {
		fmt.Fprintf(w, "  %s: %6v\r\n", th.RenderJudgement(j), r.Tally.Counts[j])
	}
	fmt.Fprintf(w, "    Score: %6v\r\n", r.Score.Score)
	fmt.Fprintf(w, "    Combo: %6v (max %v)\r\n", r.Score.Combo, r.Tally.MaxCombo)
	fmt.Fprintf(w, " Accuracy: %6.2f%%\r\n", r.Tally.Accuracy()*100)
	fmt.Fprintf(w, "     Mean: %6.2f ms\r\n", r.Tally.Mean()*1000)
	fmt.Fprintf(w, "    Stdev: %6.2f ms\r\n", r.Tally.Stdev()*1000)
	fmt.Fprintf(w, "    Drift: %6.2f\r\n", r.Score.Drift)
}
