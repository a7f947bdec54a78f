package iocli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnAndPrintf(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStreams(strings.NewReader(""), &out)

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s", 1, "abc")
	_, err := stdio.Write([]byte("!"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\ntest 1 abc!", out.String())
}

// Несколько строк подряд читаются из одного буфера
func TestReadInput_Sequential(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStreams(strings.NewReader("  alice \nsecret"), &out)

	first, err := stdio.ReadInput("Username: ")
	require.NoError(t, err)
	assert.Equal(t, "alice", first)

	second, err := stdio.ReadInput("Next: ")
	require.NoError(t, err)
	assert.Equal(t, "secret", second)

	_, err = stdio.ReadInput("More: ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "Username: Next: More: ", out.String())
}

// Без терминала пароль читается как обычная строка
func TestReadPassword_NotTerminal(t *testing.T) {
	stdio := NewStreams(strings.NewReader("correct-horse-battery\n"), io.Discard)

	password, err := stdio.ReadPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "correct-horse-battery", password)
}

// Тест ReadInput: читаем из pipe вместо os.Stdin
func TestReadInput_Pipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)

	go func() {
		_, _ = w.Write([]byte("user input\n"))
		_ = w.Close()
	}()

	oldStdin, oldStdout := os.Stdin, os.Stdout
	defer func() { os.Stdin, os.Stdout = oldStdin, oldStdout }()
	os.Stdin = r
	devNull, err := os.Open(os.DevNull)
	require.NoError(t, err)
	defer func() { _ = devNull.Close() }()
	os.Stdout = devNull

	stdio := NewStdio()
	result, err := stdio.ReadInput("Prompt: ")
	assert.NoError(t, err)
	assert.Equal(t, "user input", result)
}
