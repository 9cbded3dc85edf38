// Package console runs the interactive part of the CLI: it asks for an
// input file, a key, an IV and the chaining mode.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/nPaBwaYT/descbc/cripta"
)

// Session holds everything the user entered.
type Session struct {
	Path string
	Text []uint8
	Key  cripta.Key
	IV   cripta.Block
	CBC  bool
}

type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	// fd of the input terminal, -1 when input is not a terminal.
	fd int
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		in:  bufio.NewReader(in),
		out: out,
		fd:  -1,
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
	}
	return p
}

func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprintln(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("cannot read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadSecret reads a line without echo when input is a terminal.
func (p *Prompter) ReadSecret(prompt string) (string, error) {
	if p.fd < 0 {
		return p.ReadLine(prompt)
	}

	fmt.Fprintln(p.out, prompt)
	secret, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("cannot read input: %w", err)
	}
	return string(secret), nil
}

// ReadKey reads up to 8 bytes of text and packs them into a key.
func (p *Prompter) ReadKey(prompt string) (cripta.Key, error) {
	text, err := p.ReadSecret(prompt)
	if err != nil {
		return 0, err
	}
	return cripta.KeyFromText(text)
}

// ReadCBCConfirmation returns true for an answer starting with y or Y and
// for an empty answer.
func (p *Prompter) ReadCBCConfirmation() (bool, error) {
	answer, err := p.ReadLine("Do you want CBC mode? [Y/n] (defaults to Y)")
	if err != nil {
		return false, err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return true, nil
	}
	return answer[0] == 'y' || answer[0] == 'Y', nil
}

func (p *Prompter) ReadText() (string, []uint8, error) {
	path, err := p.ReadLine("Path to text file: ")
	if err != nil {
		return "", nil, err
	}

	text, err := os.ReadFile(path)
	if err != nil {
		return path, nil, fmt.Errorf("cannot read from file: %w", err)
	}
	return path, text, nil
}

// Run asks the session questions in order: file, key, IV, mode.
func (p *Prompter) Run() (*Session, error) {
	path, text, err := p.ReadText()
	if err != nil {
		return nil, err
	}

	key, err := p.ReadKey("64 bit key (as a string of text): ")
	if err != nil {
		return nil, fmt.Errorf("key: %w", err)
	}

	iv, err := p.ReadKey("64 bit initialisation vector (as string of text): ")
	if err != nil {
		return nil, fmt.Errorf("iv: %w", err)
	}

	cbc, err := p.ReadCBCConfirmation()
	if err != nil {
		return nil, err
	}

	return &Session{
		Path: path,
		Text: text,
		Key:  key,
		IV:   cripta.Block(iv),
		CBC:  cbc,
	}, nil
}
