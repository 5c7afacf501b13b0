package cmd

import (
	"context"
	"fmt"

	"wcamp/internal/domain"
)

// ContactCmd manages the contact card
type ContactCmd struct {
	Show  ContactShowCmd  `cmd:"show" help:"Show the saved contact card" default:"1"`
	Set   ContactSetCmd   `cmd:"set" help:"Save your contact card"`
	Vcard ContactVcardCmd `cmd:"vcard" help:"Print the contact card as vCard 3.0"`
	QR    ContactQRCmd    `cmd:"qr" help:"Print the contact card as a scannable QR code"`
	Clear ContactClearCmd `cmd:"clear" help:"Delete the saved contact card"`
}

// ContactShowCmd shows the saved card
type ContactShowCmd struct{}

// Run executes the contact show command
func (c *ContactShowCmd) Run(cli *CLI) error {
	card, err := cli.Container.ContactService.Get(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Name:     %s\n", card.FullName)
	fmt.Printf("Email:    %s\n", card.Email)
	if card.Company != "" {
		fmt.Printf("Company:  %s\n", card.Company)
	}
	if card.WebsiteURL != "" {
		fmt.Printf("Website:  %s\n", card.WebsiteURL)
	}
	if card.Phone != "" {
		fmt.Printf("Phone:    %s\n", card.Phone)
	}
	return nil
}

// ContactSetCmd saves the card
type ContactSetCmd struct {
	Name    string `help:"Full name" required:""`
	Email   string `help:"Email address" required:""`
	Company string `help:"Company or organization"`
	Website string `help:"Website URL"`
	Phone   string `help:"Phone number"`
}

// Run executes the contact set command
func (c *ContactSetCmd) Run(cli *CLI) error {
	card := domain.ContactCard{
		FullName:   c.Name,
		Email:      c.Email,
		Company:    c.Company,
		WebsiteURL: c.Website,
		Phone:      c.Phone,
	}
	if err := cli.Container.ContactService.Save(context.Background(), card); err != nil {
		return err
	}
	fmt.Println("Contact card saved")
	return nil
}

// ContactVcardCmd prints the vCard
type ContactVcardCmd struct{}

// Run executes the contact vcard command
func (c *ContactVcardCmd) Run(cli *CLI) error {
	vcard, err := cli.Container.ContactService.VCard(context.Background())
	if err != nil {
		return err
	}
	fmt.Println(vcard)
	return nil
}

// ContactQRCmd prints the QR code
type ContactQRCmd struct{}

// Run executes the contact qr command
func (c *ContactQRCmd) Run(cli *CLI) error {
	qr, err := cli.Container.ContactService.QR(context.Background())
	if err != nil {
		return err
	}
	fmt.Print(qr)
	return nil
}

// ContactClearCmd deletes the card
type ContactClearCmd struct{}

// Run executes the contact clear command
func (c *ContactClearCmd) Run(cli *CLI) error {
	if err := cli.Container.ContactService.Delete(context.Background()); err != nil {
		return err
	}
	fmt.Println("Contact card deleted")
	return nil
}
