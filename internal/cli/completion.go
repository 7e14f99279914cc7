package cli

import (
	"fmt"
	"io"
)

const bashCompletion = `#!/bin/bash
# Bash completion for admin-console

_admin_console_completion() {
    local cur prev
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    local commands="login logout dashboard categories items orders reservations reviews completion help"

    case "${prev}" in
        -status)
            COMPREPLY=( $(compgen -W "all pending preparing ready completed cancelled" -- ${cur}) )
            return 0
            ;;
        -set-status)
            COMPREPLY=( $(compgen -W "preparing ready completed confirmed cancelled" -- ${cur}) )
            return 0
            ;;
        -image)
            COMPREPLY=( $(compgen -f -- ${cur}) )
            return 0
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- ${cur}) )
            return 0
            ;;
    esac

    COMPREPLY=( $(compgen -W "${commands}" -- ${cur}) )
    return 0
}

complete -F _admin_console_completion admin-console
`

const zshCompletion = `#compdef admin-console

_admin_console() {
    local -a commands
    commands=(
        'login:Sign in with admin credentials'
        'logout:Discard the stored session'
        'dashboard:Show the analytics overview'
        'categories:List and manage menu categories'
        'items:List and manage menu items'
        'orders:List orders and move them along their workflow'
        'reservations:List reservations and move them along their workflow'
        'reviews:List and moderate customer reviews'
        'completion:Generate a shell completion script'
        'help:Show usage'
    )

    _arguments -C '1: :->command' '*:: :->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
                completion)
                    _values 'shell' bash zsh
                    ;;
            esac
            ;;
    esac
}

_admin_console "$@"
`

// WriteCompletion writes the completion script for the given shell.
func WriteCompletion(w io.Writer, shell string) error {
	switch shell {
	case "bash":
		_, err := io.WriteString(w, bashCompletion)
		return err
	case "zsh":
		_, err := io.WriteString(w, zshCompletion)
		return err
	default:
		return fmt.Errorf("unsupported shell %q (supported: bash, zsh)", shell)
	}
}
