package iocli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type Stdio struct {
	in    *bufio.Reader
	out   io.Writer
	stdin *os.File // stdin nil, если ввод не из файла (тесты)
}

func NewStdio() IO {
	return &Stdio{
		in:    bufio.NewReader(os.Stdin),
		out:   os.Stdout,
		stdin: os.Stdin,
	}
}

// NewStreams создает IO поверх произвольных потоков, пароль читается как обычная строка
func NewStreams(in io.Reader, out io.Writer) IO {
	return &Stdio{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// ReadInput читает одну строку. Последняя строка без перевода строки тоже принимается.
func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// ReadPassword читает пароль без эха, если stdin является терминалом
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	if s.stdin == nil || !term.IsTerminal(int(s.stdin.Fd())) {
		return s.ReadInput(prompt)
	}
	s.Printf("%s", prompt)
	pwBytes, err := term.ReadPassword(int(s.stdin.Fd()))
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}
