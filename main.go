package main

import "github.com/LevonKG/Smart-Expense-App/cmd"

func main() {
	cmd.Execute()
}
