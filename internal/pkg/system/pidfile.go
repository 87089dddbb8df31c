package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"
)

var ErrPIDFileExists = errors.New("pid file already exists")

// PIDFile guarda o PID do servidor em execução para que o comando --stop
// consiga localizá-lo.
type PIDFile struct {
	Path string
}

func NewPIDFile(path string) PIDFile {
	return PIDFile{Path: path}
}

// Save grava o PID. Falha se já existir um arquivo no caminho, o que indica
// outro servidor ativo ou um encerramento anterior sem limpeza.
func (p PIDFile) Save(pid int) error {
	if p.Path == "" {
		return errors.New("caminho do arquivo PID não informado")
	}

	if err := os.MkdirAll(filepath.Dir(p.Path), 0o755); err != nil {
		return fmt.Errorf("falha ao criar diretório do PID: %w", err)
	}

	f, err := os.OpenFile(p.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w em %s - o servidor pode estar em execução", ErrPIDFileExists, p.Path)
		}
		return fmt.Errorf("falha ao criar arquivo PID: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(strconv.Itoa(pid)); err != nil {
		return fmt.Errorf("falha ao gravar PID: %w", err)
	}
	return nil
}

func (p PIDFile) Load() (int, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return 0, fmt.Errorf("falha ao ler arquivo PID: %w", err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("PID inválido em %s: %w", p.Path, err)
	}
	return pid, nil
}

func (p PIDFile) Remove() {
	if p.Path == "" {
		return
	}
	_ = os.Remove(p.Path)
}

// TerminateProcess envia SIGTERM ao processo (Kill no Windows).
func TerminateProcess(pid int) error {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("não foi possível localizar o processo %d: %w", pid, err)
	}

	if runtime.GOOS == "windows" {
		return proc.Kill()
	}
	return proc.Signal(syscall.SIGTERM)
}
