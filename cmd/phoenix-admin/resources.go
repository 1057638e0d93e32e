package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PSchristopher/phoenix-admin/client"
	"github.com/PSchristopher/phoenix-admin/internal/app"
)

// --------------------------------------------------------------------
// Orders
// --------------------------------------------------------------------

func newOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "orders", Short: "Inspect orders"}
	cmd.AddCommand(newOrdersListCmd())
	cmd.AddCommand(newCustomerOrdersCmd())
	return cmd
}

func newOrdersListCmd() *cobra.Command {
	var f client.OrderFilter
	var summary bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				page, err := a.Client.ListOrders(ctx, f)
				if err != nil {
					return err
				}
				if summary {
					return printJSON(cmd.OutOrStdout(), client.SummarizeOrders(page.Data))
				}
				return printJSON(cmd.OutOrStdout(), page)
			})
		},
	}

	cmd.Flags().StringVar(&f.Search, "search", "", "Free-text search")
	cmd.Flags().StringVar(&f.Status, "status", "", "Order status or \"all\"")
	cmd.Flags().IntVar(&f.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&f.PerPage, "per-page", 0, "Page size")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print delivered/cancelled/returned counts instead of the page")
	return cmd
}

func newCustomerOrdersCmd() *cobra.Command {
	var customerID string

	cmd := &cobra.Command{
		Use:   "customer",
		Short: "List every order of one customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				orders, err := a.Client.ListCustomerOrders(ctx, customerID)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), orders)
			})
		},
	}

	cmd.Flags().StringVar(&customerID, "customer-id", "", "Customer ID (required)")
	_ = cmd.MarkFlagRequired("customer-id")
	return cmd
}

// --------------------------------------------------------------------
// Products
// --------------------------------------------------------------------

func newProductsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "products", Short: "Review product listings"}
	cmd.AddCommand(newProductsListCmd())
	cmd.AddCommand(newProductGetCmd())
	cmd.AddCommand(newProductApproveCmd())
	cmd.AddCommand(newProductRejectCmd())
	cmd.AddCommand(newProductsBulkDeleteCmd())
	cmd.AddCommand(newProductsBulkStatusCmd())
	return cmd
}

func newProductsListCmd() *cobra.Command {
	var f client.ProductFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of products",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				page, err := a.Client.ListProducts(ctx, f)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), page)
			})
		},
	}

	cmd.Flags().StringVar(&f.Search, "search", "", "Free-text search")
	cmd.Flags().StringVar(&f.Status, "status", "", "pending, approved or rejected")
	cmd.Flags().StringVar(&f.Stock, "stock", "", "Stock filter (in_stock, low_stock, out_of_stock)")
	cmd.Flags().IntVar(&f.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&f.PerPage, "per-page", 0, "Page size")
	return cmd
}

func newProductGetCmd() *cobra.Command {
	var productID string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show one product",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				p, err := a.Client.GetProduct(ctx, productID)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), p)
			})
		},
	}

	cmd.Flags().StringVar(&productID, "product-id", "", "Product ID (required)")
	_ = cmd.MarkFlagRequired("product-id")
	return cmd
}

func newProductApproveCmd() *cobra.Command {
	var productID string

	cmd := &cobra.Command{
		Use:   "approve",
		Short: "Approve a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Client.ApproveProduct(ctx, productID); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Product %s approved\n", productID)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&productID, "product-id", "", "Product ID (required)")
	_ = cmd.MarkFlagRequired("product-id")
	return cmd
}

func newProductRejectCmd() *cobra.Command {
	var productID, reason string

	cmd := &cobra.Command{
		Use:   "reject",
		Short: "Reject a product with a reason",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Client.RejectProduct(ctx, productID, reason); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Product %s rejected\n", productID)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&productID, "product-id", "", "Product ID (required)")
	cmd.Flags().StringVar(&reason, "reason", "", "Rejection reason shown to the vendor (required)")
	_ = cmd.MarkFlagRequired("product-id")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

func newProductsBulkDeleteCmd() *cobra.Command {
	var ids []string

	cmd := &cobra.Command{
		Use:   "bulk-delete",
		Short: "Delete several products",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Client.BulkDeleteProducts(ctx, ids); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d product(s)\n", len(ids))
				return err
			})
		},
	}

	cmd.Flags().StringSliceVar(&ids, "ids", nil, "Comma-separated product IDs (required)")
	_ = cmd.MarkFlagRequired("ids")
	return cmd
}

func newProductsBulkStatusCmd() *cobra.Command {
	var ids []string
	var status string

	cmd := &cobra.Command{
		Use:   "bulk-status",
		Short: "Set the status of several products",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Client.BulkUpdateProductStatus(ctx, ids, status); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Updated %d product(s) to %s\n", len(ids), status)
				return err
			})
		},
	}

	cmd.Flags().StringSliceVar(&ids, "ids", nil, "Comma-separated product IDs (required)")
	cmd.Flags().StringVar(&status, "status", "", "Target status (required)")
	_ = cmd.MarkFlagRequired("ids")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

// --------------------------------------------------------------------
// Customers
// --------------------------------------------------------------------

func newCustomersCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "customers", Short: "Manage customer accounts"}
	cmd.AddCommand(newCustomersListCmd())
	cmd.AddCommand(newCustomerGetCmd())
	cmd.AddCommand(newCustomersBulkDeleteCmd())
	cmd.AddCommand(newCustomersBulkStatusCmd())
	return cmd
}

func newCustomersListCmd() *cobra.Command {
	var f client.UserFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of customer accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				page, err := a.Client.ListUsers(ctx, f)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), page)
			})
		},
	}

	cmd.Flags().StringVar(&f.Search, "search", "", "Free-text search")
	cmd.Flags().StringVar(&f.Status, "status", "", "active or inactive")
	cmd.Flags().StringVar(&f.Role, "role", "", "Account role")
	cmd.Flags().IntVar(&f.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&f.PerPage, "per-page", 0, "Page size")
	return cmd
}

func newCustomerGetCmd() *cobra.Command {
	var customerID string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show one customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				c, err := a.Client.GetCustomer(ctx, customerID)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), c)
			})
		},
	}

	cmd.Flags().StringVar(&customerID, "customer-id", "", "Customer ID (required)")
	_ = cmd.MarkFlagRequired("customer-id")
	return cmd
}

func newCustomersBulkDeleteCmd() *cobra.Command {
	var ids []string

	cmd := &cobra.Command{
		Use:   "bulk-delete",
		Short: "Delete several customer accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Client.BulkDeleteUsers(ctx, ids); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d customer(s)\n", len(ids))
				return err
			})
		},
	}

	cmd.Flags().StringSliceVar(&ids, "ids", nil, "Comma-separated customer IDs (required)")
	_ = cmd.MarkFlagRequired("ids")
	return cmd
}

func newCustomersBulkStatusCmd() *cobra.Command {
	var ids []string
	var status string

	cmd := &cobra.Command{
		Use:   "bulk-status",
		Short: "Activate or deactivate several customer accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Client.BulkUpdateUserStatus(ctx, ids, status); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Updated %d customer(s) to %s\n", len(ids), status)
				return err
			})
		},
	}

	cmd.Flags().StringSliceVar(&ids, "ids", nil, "Comma-separated customer IDs (required)")
	cmd.Flags().StringVar(&status, "status", "", "active or inactive (required)")
	_ = cmd.MarkFlagRequired("ids")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

// --------------------------------------------------------------------
// Vendors
// --------------------------------------------------------------------

func newVendorsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "vendors", Short: "Review vendor onboarding"}
	cmd.AddCommand(newVendorsListCmd())
	cmd.AddCommand(newVendorGetCmd())
	cmd.AddCommand(newVendorApproveCmd())
	cmd.AddCommand(newVendorRejectCmd())
	cmd.AddCommand(newVendorNotesCmd())
	return cmd
}

func newVendorsListCmd() *cobra.Command {
	var f client.VendorFilter
	var summary bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of vendors",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				page, err := a.Client.ListVendors(ctx, f)
				if err != nil {
					return err
				}
				if summary {
					return printJSON(cmd.OutOrStdout(), client.SummarizeVendors(page.Data))
				}
				return printJSON(cmd.OutOrStdout(), page)
			})
		},
	}

	cmd.Flags().StringVar(&f.Search, "search", "", "Free-text search")
	cmd.Flags().IntVar(&f.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&f.Limit, "limit", 0, "Page size")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print counts by verification status instead of the page")
	return cmd
}

func newVendorGetCmd() *cobra.Command {
	var vendorID string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the onboarding record of a vendor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				v, err := a.Client.GetVendor(ctx, vendorID)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), v)
			})
		},
	}

	cmd.Flags().StringVar(&vendorID, "vendor-id", "", "Vendor ID (required)")
	_ = cmd.MarkFlagRequired("vendor-id")
	return cmd
}

func newVendorApproveCmd() *cobra.Command {
	var vendorID string

	cmd := &cobra.Command{
		Use:   "approve",
		Short: "Mark a vendor as verified",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Client.ApproveVendor(ctx, vendorID); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Vendor %s approved\n", vendorID)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&vendorID, "vendor-id", "", "Vendor ID (required)")
	_ = cmd.MarkFlagRequired("vendor-id")
	return cmd
}

func newVendorRejectCmd() *cobra.Command {
	var vendorID string

	cmd := &cobra.Command{
		Use:   "reject",
		Short: "Mark a vendor as rejected",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Client.RejectVendor(ctx, vendorID); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Vendor %s rejected\n", vendorID)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&vendorID, "vendor-id", "", "Vendor ID (required)")
	_ = cmd.MarkFlagRequired("vendor-id")
	return cmd
}

func newVendorNotesCmd() *cobra.Command {
	var vendorID, notes string

	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Save internal notes on a vendor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Client.SaveVendorNotes(ctx, vendorID, notes); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Notes saved for vendor %s\n", vendorID)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&vendorID, "vendor-id", "", "Vendor ID (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "Note text (required)")
	_ = cmd.MarkFlagRequired("vendor-id")
	_ = cmd.MarkFlagRequired("notes")
	return cmd
}
