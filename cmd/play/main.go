package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"chesscore/cli"
	"chesscore/game"
	"chesscore/rules"
)

func main() {
	fen := flag.String("fen", rules.FENStartingPosition, "FEN to start from")
	flag.Parse()

	g, err := game.NewGameFromFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad -fen: %v\n", err)
		os.Exit(2)
	}

	fmt.Println("enter moves in coordinate form (e2e4, e7e8q); commands: moves, fen, quit")
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(cli.RenderBoard(g.Position()))
		if g.Result().Terminal() {
			fmt.Println(g.Result())
			return
		}

		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "quit", "exit":
			return
		case "fen":
			fmt.Println(g.Position().FEN())
			continue
		case "moves":
			moves := g.LegalMoves()
			strs := make([]string, len(moves))
			for i, m := range moves {
				strs[i] = m.String()
			}
			fmt.Println(strings.Join(strs, " "))
			continue
		}

		m, err := cli.ParseMove(line, g.Position())
		if err != nil {
			fmt.Println(err)
			continue
		}
		if err := g.Play(m); err != nil {
			fmt.Println(err)
		}
	}
}
