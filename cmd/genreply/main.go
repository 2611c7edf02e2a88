package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"replygen/pkg/reply"
)

func main() {
	template := flag.String("template", "Шаблон 1 (РВ)", "template display name (see `genreply -list`)")
	list := flag.Bool("list", false, "print the template catalog and exit")
	order := flag.String("order", "", "order number")
	in := flag.String("in", "-", "file with pasted text ('-' for stdin)")
	done := flag.String("done", "", "completed delivery count")
	total := flag.String("total", "", "total delivery count")
	amount := flag.String("amount", "", "inflow amount")
	date := flag.String("date", "", "inflow date")
	clock := flag.String("time", "", "inflow time")
	flag.Parse()

	if *list {
		for _, name := range reply.Names() {
			fmt.Println(name)
		}
		return
	}

	input := reply.Input{
		OrderNumber:  *order,
		Done:         *done,
		Total:        *total,
		InflowAmount: *amount,
		InflowDate:   *date,
		InflowTime:   *clock,
	}
	kind := reply.KindFor(*template)
	if kind != reply.KindInflow {
		text, err := readInput(*in)
		if err != nil {
			log.Fatalf("failed to read input: %v", err)
		}
		switch kind {
		case reply.KindMulti:
			input.CalcText = text
		case reply.KindPayment:
			// two payment blocks separated by a blank line
			first, second, _ := strings.Cut(text, "\n\n")
			input.Payment1 = first
			input.Payment2 = second
		default:
			input.PriceText = text
		}
	}

	out, err := reply.Generate(*template, input)
	if err != nil {
		log.Fatalf("generation failed: %v", err)
	}
	fmt.Println(out)
}

func readInput(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}
