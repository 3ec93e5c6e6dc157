package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
	"github.com/valyala/fasttemplate"

	"github.com/iand/fadvise/internal"
)

var completionCommand = &cli.Command{
	Name:      "completion",
	Usage:     "Generate code for shell completion",
	ArgsUsage: " ",
	Action:    completion,
	Description: "" +
		"Writes a completion script for SHELL to standard output. For example:\n" +
		"  source <(fadvise completion --shell bash)",
	Flags: []cli.Flag{
		shellFlag,
	},
}

var shellFlag = &cli.StringFlag{
	Name:     "shell",
	Aliases:  []string{"s"},
	Usage:    "Target `SHELL` to create completion code for (" + strings.Join(shells, ", ") + ")",
	Required: true,
}

var shells = []string{"bash", "zsh", "fish", "powershell"}

func completion(cc *cli.Context) error {
	script, err := completionScript(cc.App, cc.String("shell"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if _, err := fmt.Fprint(cc.App.Writer, script); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

func completionScript(app *cli.App, shell string) (string, error) {
	var tmpl string
	switch strings.ToLower(shell) {
	case "bash":
		tmpl = bashCompletion
	case "zsh":
		tmpl = zshCompletion
	case "powershell":
		tmpl = powershellCompletion
	case "fish":
		return app.ToFishCompletion()
	default:
		return "", fmt.Errorf("%q: %w", shell, internal.ErrUnknownShell)
	}

	return fasttemplate.ExecuteString(tmpl, "{{", "}}", map[string]interface{}{
		"prog": app.Name,
	}), nil
}

// The scripts below call back into the binary with --generate-bash-completion.

const bashCompletion = `#!/bin/bash

_{{prog}}_bash_autocomplete() {
  if [[ "${COMP_WORDS[0]}" != "source" ]]; then
    local cur opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    if [[ "$cur" == "-"* ]]; then
      opts=$( ${COMP_WORDS[@]:0:$COMP_CWORD} ${cur} --generate-bash-completion )
    else
      opts=$( ${COMP_WORDS[@]:0:$COMP_CWORD} --generate-bash-completion )
    fi
    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    return 0
  fi
}

complete -o bashdefault -o default -o nospace -F _{{prog}}_bash_autocomplete {{prog}}
`

const zshCompletion = `#compdef {{prog}}

_{{prog}}_zsh_autocomplete() {
  local -a opts
  local cur
  cur=${words[-1]}
  if [[ "$cur" == "-"* ]]; then
    opts=("${(@f)$(${words[@]:0:#words[@]-1} ${cur} --generate-bash-completion)}")
  else
    opts=("${(@f)$(${words[@]:0:#words[@]-1} --generate-bash-completion)}")
  fi

  if [[ "${opts[1]}" != "" ]]; then
    _describe 'values' opts
  else
    _files
  fi
}

compdef _{{prog}}_zsh_autocomplete {{prog}}
`

const powershellCompletion = `Register-ArgumentCompleter -Native -CommandName '{{prog}}' -ScriptBlock {
  param($wordToComplete, $commandAst, $cursorPosition)
  $other = "$($commandAst.ToString()) --generate-bash-completion"
  Invoke-Expression $other | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
    [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
  }
}
`
