package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/billfold/billfold/internal/domain/bill"
	"github.com/billfold/billfold/internal/logger"
	"github.com/billfold/billfold/internal/store"
	"github.com/billfold/billfold/internal/types"
	"github.com/billfold/billfold/internal/view"
	"github.com/shopspring/decimal"
)

// recentBillCount caps the summary's recent-bills section
const recentBillCount = 6

// Shell is an interactive command loop over the bill store. It holds
// the per-session display-order overlay; restarting the shell resets
// any manual reordering to the pipeline's natural order.
type Shell struct {
	store  *store.BillStore
	order  *view.DisplayOrder
	logger *logger.Logger
	in     io.Reader
	out    io.Writer
}

func NewShell(billStore *store.BillStore, log *logger.Logger, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		store:  billStore,
		order:  view.NewDisplayOrder(),
		logger: log,
		in:     in,
		out:    out,
	}
}

// Run reads commands until quit or EOF
func (sh *Shell) Run(ctx context.Context) {
	sh.logger.Debugw("shell started", "bills", sh.store.Count())
	fmt.Fprintf(sh.out, "billfold: %d bills loaded. Type 'help' for commands.\n", sh.store.Count())

	scanner := bufio.NewScanner(sh.in)
	for {
		fmt.Fprint(sh.out, "> ")
		if !scanner.Scan() {
			return
		}
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		cmd, args := strings.ToLower(tokens[0]), tokens[1:]
		if cmd == "quit" || cmd == "exit" {
			return
		}
		if err := sh.dispatch(ctx, cmd, args); err != nil {
			fmt.Fprintf(sh.out, "error: %v\n", err)
		}
	}
}

func (sh *Shell) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		sh.printHelp()
	case "list":
		sh.printBills(sh.order.Reconcile(sh.store.FilteredBills()))
	case "show":
		return sh.show(args)
	case "summary":
		sh.printSummary()
	case "new":
		b, err := sh.store.Create(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(sh.out, "created %s (%s) and selected it\n", b.BillNumber, b.ID)
	case "select":
		if len(args) != 1 {
			return usageError("select <bill-id>")
		}
		sh.store.Select(args[0])
		if sh.store.Selected() == nil {
			fmt.Fprintln(sh.out, "no such bill, selection cleared")
		}
	case "deselect":
		sh.store.Deselect()
	case "edit":
		return sh.edit(args)
	case "item":
		return sh.item(args)
	case "save":
		sel := sh.store.Selected()
		if sel == nil {
			return usageError("save requires a selected bill")
		}
		return sh.store.Update(ctx, sel)
	case "delete":
		if len(args) != 1 {
			return usageError("delete <bill-id>")
		}
		return sh.store.Delete(ctx, args[0])
	case "filter":
		return sh.filter(args)
	case "move":
		if len(args) != 2 {
			return usageError("move <bill-id> <target-bill-id>")
		}
		sh.order.Reconcile(sh.store.FilteredBills())
		if !sh.order.Move(args[0], args[1]) {
			fmt.Fprintln(sh.out, "nothing moved, check the ids")
		}
	case "reset-order":
		sh.order.Reset()
	default:
		return usageError("unknown command %q, try 'help'", cmd)
	}
	return nil
}

func (sh *Shell) show(args []string) error {
	var b *bill.Bill
	if len(args) == 1 {
		b = sh.store.Bill(args[0])
	} else {
		b = sh.store.Selected()
	}
	if b == nil {
		return usageError("show <bill-id>, or select a bill first")
	}

	fmt.Fprintf(sh.out, "%s  %s  [%s]\n", b.BillNumber, b.CustomerName, b.Status)
	fmt.Fprintf(sh.out, "date %s  due %s\n", b.Date, b.DueDate)
	if b.CustomerEmail != "" || b.CustomerPhone != "" {
		fmt.Fprintf(sh.out, "%s  %s\n", b.CustomerEmail, b.CustomerPhone)
	}
	if b.BillingAddress != "" {
		fmt.Fprintln(sh.out, b.BillingAddress)
	}

	w := tabwriter.NewWriter(sh.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM\tDESCRIPTION\tQTY\tPRICE\tAMOUNT")
	for _, item := range b.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			item.ID, item.Description, item.Quantity, item.Price, item.Amount)
	}
	w.Flush()

	fmt.Fprintf(sh.out, "subtotal %s  tax %s  total %s\n", b.Subtotal, b.Tax, b.Total)
	if b.Notes != "" {
		fmt.Fprintf(sh.out, "notes: %s\n", b.Notes)
	}
	return nil
}

// edit mutates the selected working copy only; 'save' commits it
func (sh *Shell) edit(args []string) error {
	sel := sh.store.Selected()
	if sel == nil {
		return usageError("edit requires a selected bill")
	}
	if len(args) < 2 {
		return usageError("edit <field> <value...>")
	}

	field, value := strings.ToLower(args[0]), strings.Join(args[1:], " ")
	switch field {
	case "name":
		sel.CustomerName = value
	case "email":
		sel.CustomerEmail = value
	case "phone":
		sel.CustomerPhone = value
	case "address":
		sel.BillingAddress = value
	case "notes":
		sel.Notes = value
	case "number":
		sel.BillNumber = value
	case "status":
		status := types.BillStatus(value)
		if err := status.Validate(); err != nil {
			return err
		}
		sel.Status = status
	case "date":
		d, err := types.ParseDate(value)
		if err != nil {
			return err
		}
		sel.Date = d
	case "due":
		d, err := types.ParseDate(value)
		if err != nil {
			return err
		}
		sel.DueDate = d
	default:
		return usageError("unknown field %q", field)
	}

	// stash the edited copy back as the working copy
	sh.store.StageSelected(sel)
	return nil
}

func (sh *Shell) item(args []string) error {
	sel := sh.store.Selected()
	if sel == nil {
		return usageError("item commands require a selected bill")
	}
	if len(args) == 0 {
		return usageError("item add | item rm <item-id> | item set <item-id> <qty> <price> [description...]")
	}

	switch strings.ToLower(args[0]) {
	case "add":
		item := sel.AddItem()
		fmt.Fprintf(sh.out, "added %s\n", item.ID)
	case "rm":
		if len(args) != 2 {
			return usageError("item rm <item-id>")
		}
		if err := sel.RemoveItem(args[1]); err != nil {
			return err
		}
	case "set":
		if len(args) < 4 {
			return usageError("item set <item-id> <qty> <price> [description...]")
		}
		quantity, err := decimal.NewFromString(args[2])
		if err != nil {
			return err
		}
		price, err := decimal.NewFromString(args[3])
		if err != nil {
			return err
		}
		existing := sel.Item(args[1])
		if existing == nil {
			return usageError("no item %s on the selected bill", args[1])
		}
		description := existing.Description
		if len(args) > 4 {
			description = strings.Join(args[4:], " ")
		}
		if err := sel.UpdateItem(args[1], description, quantity, price); err != nil {
			return err
		}
	default:
		return usageError("unknown item command %q", args[0])
	}

	sh.store.StageSelected(sel)
	return nil
}

func (sh *Shell) filter(args []string) error {
	if len(args) == 0 {
		opts := sh.store.FilterOptions()
		fmt.Fprintf(sh.out, "status=%s search=%q", opts.Status, opts.SearchQuery)
		if opts.DateRange != nil {
			fmt.Fprintf(sh.out, " range=%s..%s", opts.DateRange.From, opts.DateRange.To)
		}
		fmt.Fprintln(sh.out)
		return nil
	}

	switch strings.ToLower(args[0]) {
	case "status":
		if len(args) != 2 {
			return usageError("filter status <all|draft|pending|paid|overdue>")
		}
		status := types.BillStatus(args[1])
		if err := status.ValidateFilter(); err != nil {
			return err
		}
		sh.store.SetFilterOptions(types.FilterPatch{Status: &status})
	case "search":
		query := strings.Join(args[1:], " ")
		sh.store.SetFilterOptions(types.FilterPatch{SearchQuery: &query})
	case "range":
		if len(args) != 3 {
			return usageError("filter range <from> <to>")
		}
		from, err := types.ParseDate(args[1])
		if err != nil {
			return err
		}
		to, err := types.ParseDate(args[2])
		if err != nil {
			return err
		}
		r := types.DateRange{From: from, To: to}
		if err := r.Validate(); err != nil {
			return err
		}
		sh.store.SetFilterOptions(types.FilterPatch{DateRange: &r})
	case "clear":
		status := types.BillStatusAll
		query := ""
		sh.store.SetFilterOptions(types.FilterPatch{
			Status:         &status,
			ClearDateRange: true,
			SearchQuery:    &query,
		})
	default:
		return usageError("filter status|search|range|clear")
	}
	return nil
}

func (sh *Shell) printBills(bills []*bill.Bill) {
	if len(bills) == 0 {
		fmt.Fprintln(sh.out, "no bills match the current filters")
		return
	}

	w := tabwriter.NewWriter(sh.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNUMBER\tCUSTOMER\tDATE\tSTATUS\tTOTAL")
	for _, b := range bills {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			b.ID, b.BillNumber, b.CustomerName, b.Date, b.Status, b.Total)
	}
	w.Flush()
}

// printSummary shows per-status totals over the whole collection, then
// the most recent bills from the filtered view.
func (sh *Shell) printSummary() {
	sum := sh.store.Summary()

	w := tabwriter.NewWriter(sh.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STATUS\tBILLS\tTOTAL")
	fmt.Fprintf(w, "all\t%d\t%s\n", sum.All.Count, sum.All.Total)
	fmt.Fprintf(w, "paid\t%d\t%s\n", sum.Paid.Count, sum.Paid.Total)
	fmt.Fprintf(w, "pending\t%d\t%s\n", sum.Pending.Count, sum.Pending.Total)
	fmt.Fprintf(w, "overdue\t%d\t%s\n", sum.Overdue.Count, sum.Overdue.Total)
	w.Flush()

	recent := sh.store.FilteredBills()
	if len(recent) > recentBillCount {
		recent = recent[:recentBillCount]
	}
	if len(recent) > 0 {
		fmt.Fprintln(sh.out, "recent:")
		sh.printBills(recent)
	}
}

func (sh *Shell) printHelp() {
	fmt.Fprint(sh.out, `commands:
  list                                 show bills (filters + manual order applied)
  show <bill-id>                       show one bill in full
  summary                              per-status totals and recent bills
  new                                  create and select a fresh bill
  select <bill-id> / deselect          pick the working copy
  edit <field> <value...>              edit working copy (name|email|phone|address|notes|number|status|date|due)
  item add | rm <id> | set <id> <qty> <price> [desc...]
  save                                 commit the working copy
  delete <bill-id>                     remove a bill
  filter [status|search|range|clear]   narrow the visible set
  move <bill-id> <target-bill-id>      manually reorder the visible set
  reset-order                          back to date ordering
  quit
`)
}

func usageError(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}
