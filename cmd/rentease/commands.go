package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abdsayeed/rentease-go/api"
	"github.com/abdsayeed/rentease-go/auth"
	"github.com/abdsayeed/rentease-go/guard"
	"github.com/abdsayeed/rentease-go/internal/utils"
	"github.com/abdsayeed/rentease-go/properties"
	"github.com/abdsayeed/rentease-go/token"
	"github.com/abdsayeed/rentease-go/users"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "rentease",
		Short:         "Rentease marketplace client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newLoginCmd(a),
		newRegisterCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newPropertiesCmd(a),
		newBookingsCmd(a),
		newFavoritesCmd(a),
	)
	return root
}

func newLoginCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if d := guard.GuestOnly(a.state); !d.Allowed {
				fmt.Printf("already signed in as %s\n", utils.Value(a.state.CurrentUser()).Email)
				return nil
			}
			bundle, err := a.auth.Login(cmd.Context(), email, password)
			if err != nil {
				return describeAPIError(err)
			}
			fmt.Printf("signed in as %s (%s)\n", bundle.User.Email, bundle.User.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(a *app) *cobra.Command {
	req := auth.RegisterRequest{Role: users.RoleCustomer}
	var role string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Role = users.RoleType(role)
			bundle, err := a.auth.Register(cmd.Context(), req)
			if err != nil {
				return describeAPIError(err)
			}
			fmt.Printf("registered %s (%s)\n", bundle.User.Email, bundle.User.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	cmd.Flags().StringVar(&req.ConfirmPassword, "confirm-password", "", "password confirmation")
	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "contact number")
	cmd.Flags().StringVar(&role, "role", string(users.RoleCustomer), "account role (customer, agent)")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	cmd.MarkFlagRequired("confirm-password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and purge stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.auth.Logout()
			fmt.Println("signed out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if d := guard.Authenticated(a.state, "/whoami"); !d.Allowed {
				fmt.Printf("not signed in (would redirect to %s)\n", d.Target)
				return nil
			}
			user := utils.Value(a.state.CurrentUser())
			fmt.Printf("%s <%s> role=%s\n", user.FullName(), user.Email, user.Role)

			intro, err := token.Introspect(a.state.AccessToken())
			if err == nil && !intro.Expires.IsZero() {
				if intro.Active {
					fmt.Printf("access token expires in %s\n", intro.ExpiresIn().Round(time.Second))
				} else {
					fmt.Println("access token expired; it will refresh on the next call")
				}
			}
			return nil
		},
	}
}

func newPropertiesCmd(a *app) *cobra.Command {
	var filters properties.SearchFilters
	var propertyType string
	cmd := &cobra.Command{
		Use:   "properties",
		Short: "Browse listings",
		RunE: func(cmd *cobra.Command, args []string) error {
			filters.Type = properties.PropertyType(propertyType)
			page, meta, err := a.properties.List(cmd.Context(), filters)
			if err != nil {
				return describeAPIError(err)
			}
			for _, p := range page {
				fmt.Printf("%-26s %-10s %8.2f/night  %s, %s\n", p.Title, p.Type, p.PricePerNight, p.Location.City, p.Location.Country)
			}
			if meta != nil {
				fmt.Printf("page %d of %d (%d listings)\n", meta.CurrentPage, meta.TotalPages, meta.TotalItems)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&filters.Query, "query", "", "free-text search")
	cmd.Flags().StringVar(&filters.City, "city", "", "filter by city")
	cmd.Flags().StringVar(&propertyType, "type", "", "property type")
	cmd.Flags().Float64Var(&filters.MinPrice, "min-price", 0, "minimum nightly price")
	cmd.Flags().Float64Var(&filters.MaxPrice, "max-price", 0, "maximum nightly price")
	cmd.Flags().IntVar(&filters.Page, "page", 0, "page number")
	cmd.Flags().IntVar(&filters.Limit, "limit", 0, "page size")
	return cmd
}

func newBookingsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bookings",
		Short: "List your bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if d := guard.Authenticated(a.state, "/bookings"); !d.Allowed {
				fmt.Printf("not signed in (would redirect to %s?returnUrl=%s)\n", d.Target, d.ReturnTo)
				return nil
			}
			mine, err := a.bookings.MyBookings(cmd.Context())
			if err != nil {
				return describeAPIError(err)
			}
			for _, b := range mine {
				fmt.Printf("%-26s %s → %s  %-9s %8.2f\n",
					b.PropertyTitle,
					b.CheckInDate.Format("2006-01-02"),
					b.CheckOutDate.Format("2006-01-02"),
					b.Status,
					b.TotalPrice,
				)
			}
			return nil
		},
	}
}

func newFavoritesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "List your saved properties",
		RunE: func(cmd *cobra.Command, args []string) error {
			if d := guard.Authenticated(a.state, "/favorites"); !d.Allowed {
				fmt.Printf("not signed in (would redirect to %s)\n", d.Target)
				return nil
			}
			ids, err := a.users.Favorites(cmd.Context())
			if err != nil {
				return describeAPIError(err)
			}
			for _, id := range ids {
				fmt.Println(id)
			}
			return nil
		},
	}
}

// describeAPIError flattens the server's field errors onto the message so
// the CLI shows validation failures the way the forms would.
func describeAPIError(err error) error {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) || len(apiErr.FieldErrors) == 0 {
		return err
	}
	msg := apiErr.Message
	for field, problems := range apiErr.FieldErrors {
		for _, p := range problems {
			msg += fmt.Sprintf("\n  %s: %s", field, p)
		}
	}
	return fmt.Errorf("%s", msg)
}
