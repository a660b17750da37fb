// ABOUTME: Personnel CLI commands
// ABOUTME: People link to grants through a many-to-many grant ID list
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/harperreed/grantdesk/models"
	"github.com/harperreed/grantdesk/store"
)

// AddPersonCommand creates a personnel record
func AddPersonCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-person", flag.ExitOnError)
	first := fs.String("first", "", "First name (required)")
	last := fs.String("last", "", "Last name")
	email := fs.String("email", "", "Email address")
	role := fs.String("role", "", "Role, e.g. \"PI\" or \"Program Officer\"")
	ptype := fs.String("type", "", "Person type: internal, external, funder, other")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *first == "" {
		return fmt.Errorf("--first is required")
	}
	switch *ptype {
	case "", models.PersonnelInternal, models.PersonnelExternal, models.PersonnelFunder, models.PersonnelOther:
	default:
		return fmt.Errorf("invalid --type %q (internal, external, funder, other)", *ptype)
	}

	person := &models.Personnel{
		FirstName: *first,
		LastName:  *last,
		Email:     *email,
		Role:      *role,
		Type:      *ptype,
	}
	s.AddPersonnel(person)

	fmt.Printf("✓ Person added: %s %s (ID: %s)\n", person.FirstName, person.LastName, shortID(person.ID))
	return nil
}

// ListPeopleCommand lists personnel, optionally filtered by type
func ListPeopleCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-people", flag.ExitOnError)
	ptype := fs.String("type", "", "Filter by type: internal, external, funder, other")
	if err := fs.Parse(args); err != nil {
		return err
	}

	people := s.Personnel()
	if *ptype != "" {
		filtered := people[:0]
		for _, p := range people {
			if p.Type == *ptype {
				filtered = append(filtered, p)
			}
		}
		people = filtered
	}

	if len(people) == 0 {
		fmt.Println("No personnel found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tROLE\tTYPE\tGRANTS\tID")
	fmt.Fprintln(w, "----\t----\t----\t------\t--")
	for _, p := range people {
		name := strings.TrimSpace(p.FirstName + " " + p.LastName)
		role := p.Role
		if role == "" {
			role = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", name, role, p.Type, len(p.GrantIDs), shortID(p.ID))
	}
	w.Flush()
	return nil
}

// AssignPersonCommand links a person to a grant
func AssignPersonCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("assign-person", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 2 {
		return fmt.Errorf("usage: assign <person-id> <grant-id>")
	}

	grant, err := resolveGrant(s, fs.Arg(1))
	if err != nil {
		return err
	}

	if err := s.AssignGrant(fs.Arg(0), grant.ID); err != nil {
		return fmt.Errorf("failed to assign: %w", err)
	}

	fmt.Printf("✓ Assigned to %s\n", grant.Title)
	return nil
}

// DeletePersonCommand removes a personnel record
func DeletePersonCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("delete-person", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		return fmt.Errorf("person ID required")
	}

	if err := s.DeletePersonnel(fs.Arg(0)); err != nil {
		return fmt.Errorf("failed to delete: %w", err)
	}

	fmt.Println("✓ Person deleted")
	return nil
}
