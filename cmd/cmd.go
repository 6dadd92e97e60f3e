package cmd

import (
	"errors"
	"os"

	e "github.com/rami3l/monty/errors"
	"github.com/rami3l/monty/vm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	easy "github.com/t-tomalak/logrus-easy-formatter"
)

// Execute runs the monty binary. Every failure ends in the reporter.
func Execute() {
	vm_ := vm.NewVM(os.Stdout)
	reporter := e.NewReporter(vm_)
	if err := execute(App(vm_)); err != nil {
		reporter.Report(asFatal(err))
	}
	vm_.Release()
}

func App(vm_ *vm.VM) (app *cobra.Command) {
	app = &cobra.Command{
		Use:           "monty FILE",
		Args:          cobra.ArbitraryArgs,
		Short:         "monty: A Monty bytecode interpreter in Go.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	app.Flags().SortFlags = true
	app.SetFlagErrorFunc(func(*cobra.Command, error) error { return e.BadInvocation{} })

	defaultVerbosityStr := "INFO"
	verbosity := app.Flags().StringP("verbosity", "v", defaultVerbosityStr, "logging verbosity")
	maxNodes := app.Flags().Int("max-nodes", 0, "max number of stack nodes, 0 for unlimited")

	app.RunE = func(_ *cobra.Command, args []string) error {
		verbosityLvl, err := logrus.ParseLevel(*verbosity)
		if err != nil {
			verbosityLvl, _ = logrus.ParseLevel(defaultVerbosityStr)
		}
		logrus.SetLevel(verbosityLvl)
		logrus.SetFormatter(&easy.Formatter{LogFormat: "%lvl% %msg%\n"})

		vm_.SetMaxNodes(*maxNodes)
		return appMain(vm_, args)
	}
	return
}

// execute runs app. Asking for help is a bad invocation like any other:
// monty takes a file and nothing else.
func execute(app *cobra.Command) (err error) {
	app.SetHelpFunc(func(*cobra.Command, []string) { err = e.BadInvocation{} })
	if execErr := app.Execute(); execErr != nil {
		return execErr
	}
	return
}

func appMain(vm_ *vm.VM, args []string) error {
	if len(args) != 1 {
		return e.BadInvocation{}
	}
	return vm_.RunFile(args[0])
}

func asFatal(err error) e.Fatal {
	var fatal e.Fatal
	if errors.As(err, &fatal) {
		return fatal
	}
	logrus.Debugln(err)
	return e.BadInvocation{}
}
