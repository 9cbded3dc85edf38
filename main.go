package main

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/nPaBwaYT/descbc/config"
	"github.com/nPaBwaYT/descbc/console"
	"github.com/nPaBwaYT/descbc/cripta"
)

/*
Шифрование и дешифрование файла DES в режиме CBC
go run . -kt=password -ivt=initvect input.txt

Ключ и IV в hex, режим ECB, вывод в hex
go run . -k=133457799BBCDFF1 -m=ecb -x input.txt

Интерактивный режим (путь, ключ, IV и режим запрашиваются с консоли)
go run . -i

Политика последнего неполного блока: zero-fill, truncate, legacy
go run . -kt=secret -p=legacy input.txt

Настройки по умолчанию берутся из окружения (.env) или YAML-файла,
путь к которому задается в DES_CONFIG_PATH.
*/

var errUsage = errors.New("usage")

type options struct {
	path      string
	text      []uint8
	key       cripta.Key
	iv        cripta.Block
	mode      cripta.CipherMode
	policy    cripta.BlockPolicy
	hexOutput bool
	trace     bool
}

func main() {
	if err := config.LoadEnvFile(config.ENV_FILE); err != nil {
		slog.Error("Error loading .env file", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Error loading config", "error", err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg.Log, os.Stderr).With("session", uuid.New().String())

	opts, err := parseOptions(os.Args[1:], cfg, os.Stdin, os.Stdout, logger)
	if errors.Is(err, errUsage) {
		os.Exit(2)
	}
	if err != nil {
		if errors.Is(err, cripta.ErrKeyTooLong) {
			fmt.Fprintln(os.Stderr, "Input is greater than 64 bits.")
		}
		logger.Error("Fatal error", "error", err)
		os.Exit(1)
	}

	if err := run(os.Stdout, logger, opts); err != nil {
		logger.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

// parseOptions собирает параметры запуска из флагов, конфига и, в
// интерактивном режиме, из консоли
func parseOptions(args []string, cfg *config.Config, stdin io.Reader, stdout io.Writer, logger *slog.Logger) (options, error) {
	var opts options

	fs := flag.NewFlagSet("descbc", flag.ContinueOnError)
	fs.SetOutput(stdout)

	interactiveFlag := fs.Bool("i", false, "Interactive mode: ask for file, key, IV and mode")
	keyFlag := fs.String("k", "", "Key as 16 hex digits")
	keyTextFlag := fs.String("kt", "", "Key as text, up to 8 bytes")
	ivFlag := fs.String("iv", "", "IV as 16 hex digits")
	ivTextFlag := fs.String("ivt", "", "IV as text, up to 8 bytes")
	modeFlag := fs.String("m", cfg.Cipher.Mode, "Cipher mode: cbc, ecb")
	policyFlag := fs.String("p", cfg.Cipher.BlockPolicy, "Final partial block policy: zero-fill, truncate, legacy")
	hexFlag := fs.Bool("x", cfg.Cipher.Output == "hex", "Print ciphertext as hex")
	traceFlag := fs.Bool("trace", false, "Log the round keys")

	if err := fs.Parse(args); err != nil {
		return opts, errUsage
	}

	var err error
	if opts.policy, err = cripta.ParseBlockPolicy(*policyFlag); err != nil {
		return opts, err
	}
	opts.hexOutput = *hexFlag
	opts.trace = *traceFlag

	if *interactiveFlag {
		fmt.Fprintf(stdout, "Final partial block policy: %s\n\n", opts.policy)

		session, err := console.NewPrompter(stdin, stdout).Run()
		if err != nil {
			return opts, err
		}

		opts.path = session.Path
		opts.text = session.Text
		opts.key = session.Key
		opts.iv = session.IV
		opts.mode = cripta.CipherModeECB
		if session.CBC {
			opts.mode = cripta.CipherModeCBC
		}
		return opts, nil
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stdout, "Usage:")
		fmt.Fprintln(stdout, "  descbc [flags] input.txt")
		fmt.Fprintln(stdout, "  descbc -i")
		fs.PrintDefaults()
		return opts, errUsage
	}

	opts.path = fs.Arg(0)
	if opts.text, err = os.ReadFile(opts.path); err != nil {
		return opts, fmt.Errorf("cannot read from file: %w", err)
	}

	if opts.mode, err = cripta.ParseCipherMode(*modeFlag); err != nil {
		return opts, err
	}

	if opts.key, err = keyFromFlags(*keyFlag, *keyTextFlag); err != nil {
		return opts, fmt.Errorf("key: %w", err)
	}

	if opts.mode == cripta.CipherModeCBC {
		iv, err := keyFromFlags(*ivFlag, *ivTextFlag)
		switch {
		case errors.Is(err, errMissingKey):
			if opts.iv, err = randomIV(); err != nil {
				return opts, fmt.Errorf("iv: %w", err)
			}
			logger.Info("Generated IV", "iv", fmt.Sprintf("%016X", uint64(opts.iv)))
		case err != nil:
			return opts, fmt.Errorf("iv: %w", err)
		default:
			opts.iv = cripta.Block(iv)
		}
	}

	return opts, nil
}

var errMissingKey = errors.New("neither hex nor text value given")

// keyFromFlags разбирает значение из hex-флага или текстового флага
func keyFromFlags(hexValue, textValue string) (cripta.Key, error) {
	switch {
	case hexValue != "" && textValue != "":
		return 0, errors.New("hex and text values are mutually exclusive")
	case hexValue != "":
		return cripta.ParseKeyHex(hexValue)
	case textValue != "":
		return cripta.KeyFromText(textValue)
	default:
		return 0, errMissingKey
	}
}

func randomIV() (cripta.Block, error) {
	var buf [cripta.BlockSize]uint8
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return cripta.Block(binary.BigEndian.Uint64(buf[:])), nil
}

func formatBlocks(blocks []cripta.Block, hexOutput bool) string {
	data := cripta.JoinBlocks(blocks)
	if hexOutput {
		return hex.EncodeToString(data)
	}
	return string(data)
}

// run шифрует текст, печатает шифртекст, затем расшифровывает его обратно
func run(w io.Writer, logger *slog.Logger, opts options) error {
	blocks, err := cripta.SplitBlocks(opts.text, opts.policy)
	if err != nil {
		return err
	}

	des := cripta.NewDESCipher(opts.key)
	if opts.trace {
		for i, rk := range des.RoundKeys() {
			logger.Info("Round key", "round", i+1, "bits", cripta.FormatBinary(rk, 48))
		}
	}

	ctx, err := cripta.NewCipherContext(des, opts.mode, opts.iv)
	if err != nil {
		return fmt.Errorf("cannot create cipher context: %w", err)
	}

	startTime := time.Now()

	cipherBlocks := ctx.Encrypt(blocks)
	plainBlocks := ctx.Decrypt(cipherBlocks)

	fmt.Fprintf(w, "Input plaintext: \n%s\n", opts.text)
	fmt.Fprintf(w, "\nEncrypted ciphertext: \n%s\n", formatBlocks(cipherBlocks, opts.hexOutput))
	fmt.Fprintf(w, "\nDecrypted plaintext: \n%s\n", formatBlocks(plainBlocks, false))

	logger.Info("Done",
		"file", opts.path,
		"mode", opts.mode.String(),
		"policy", opts.policy.String(),
		"blocks", len(blocks),
		"duration", time.Since(startTime),
	)

	return nil
}
