package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/RMahshie/adscorr/internal/config"
	"github.com/RMahshie/adscorr/internal/frequency"
	"github.com/RMahshie/adscorr/internal/storage"
	"github.com/RMahshie/adscorr/internal/thermo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	zerolog.SetGlobalLevel(cfg.Log.Level)

	ctx := context.Background()

	var store storage.S3Service
	if cfg.AWS.S3Bucket != "" {
		store, err = storage.NewS3Service(ctx, storage.S3Config{
			Bucket:    cfg.AWS.S3Bucket,
			Endpoint:  cfg.AWS.S3Endpoint,
			Region:    cfg.AWS.Region,
			AccessKey: cfg.AWS.AccessKeyID,
			SecretKey: cfg.AWS.SecretAccessKey,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize object storage")
		}
	}

	if err := run(ctx, frequency.NewLoader(store), os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Correction failed")
	}
}

type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// ask writes the prompt and returns the next input line without its line ending
func (p *prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading answer to %q: %w", strings.TrimSpace(prompt), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *prompter) askFloat(prompt string) (float64, error) {
	answer, err := p.ask(prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(answer), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", answer, err)
	}
	return v, nil
}

func (p *prompter) askFrequencies(ctx context.Context, loader *frequency.Loader, prompt string) ([]float64, error) {
	ref, err := p.ask(prompt)
	if err != nil {
		return nil, err
	}
	return loader.Load(ctx, ref)
}

func run(ctx context.Context, loader *frequency.Loader, in io.Reader, out io.Writer) error {
	p := &prompter{in: bufio.NewReader(in), out: out}

	final, err := p.askFrequencies(ctx, loader, "Enter the path to the file containing vibrational frequencies of the final state (surface + adsorbat): ")
	if err != nil {
		return err
	}
	isolated, err := p.askFrequencies(ctx, loader, "Enter the path to the file containing vibrational frequencies of the isolated molecule: ")
	if err != nil {
		return err
	}
	surface, err := p.askFrequencies(ctx, loader, "Enter the path to the file containing vibrational frequencies of the surface: ")
	if err != nil {
		return err
	}

	e0k, err := p.askFloat("Enter the adsorption energy at 0 K in eV: ")
	if err != nil {
		return err
	}
	temperature, err := p.askFloat("Enter the temperature in Kelvin: ")
	if err != nil {
		return err
	}
	answer, err := p.ask("Is the molecule linear (yes/no)? ")
	if err != nil {
		return err
	}
	linear := strings.EqualFold(strings.TrimSpace(answer), "yes")

	log.Debug().
		Int("final_modes", len(final)).
		Int("isolated_modes", len(isolated)).
		Int("surface_modes", len(surface)).
		Msg("Frequencies loaded")

	input := thermo.Input{
		E0K:         e0k,
		Temperature: temperature,
		Final:       final,
		Isolated:    isolated,
		Surface:     surface,
		Linear:      linear,
	}
	if err := thermo.Validate(input); err != nil {
		return err
	}
	corrected, err := thermo.CorrectAdsorptionEnergy(out, input)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "Corrected adsorption energy at %s K: %.3f eV\n", thermo.FormatKelvin(temperature), corrected)
	return err
}
