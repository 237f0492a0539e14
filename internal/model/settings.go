package model

import "time"

// Settings is the site-wide configuration singleton. The ten image
// fields (logo, favicon and the page banners) are independent
// single-valued attachment fields.
type Settings struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	BusinessNumber    string    `json:"businessNumber"`
	BusinessAddress   string    `json:"businessAddress"`
	BusinessLocation  string    `json:"businessLocation"`
	BusinessSlogan    string    `json:"businessSlogan"`
	BusinessEmail     string    `json:"businessEmail"`
	BusinessFacebook  string    `json:"businessFacebook"`
	BusinessInstagram string    `json:"businessInstagram"`
	BusinessTwitter   string    `json:"businessTwitter"`
	BusinessLinkedin  string    `json:"businessLinkedin"`
	BusinessYoutube   string    `json:"businessYoutube"`
	BusinessWhatsapp  string    `json:"businessWhatsapp"`
	BusinessWorkHours string    `json:"businessWorkHours"`
	PrimaryColor      string    `json:"primaryColor"`
	SecondaryColor    string    `json:"secondaryColor"`
	Logo              string    `json:"logo"`
	Favicon           string    `json:"favicon"`
	AboutBanner       string    `json:"aboutBanner"`
	ServiceBanner     string    `json:"serviceBanner"`
	WorkBanner        string    `json:"workBanner"`
	ProcessBanner     string    `json:"processBanner"`
	GalleryBanner     string    `json:"galleryBanner"`
	ShopBanner        string    `json:"shopBanner"`
	ContactBanner     string    `json:"contactBanner"`
	BlogBanner        string    `json:"blogBanner"`
	Currency          string    `json:"currency"`
	Delivery          string    `json:"delivery"`
	PaymentTerms      string    `json:"paymentTerms"`
	PickupPoint       string    `json:"pickupPoint"`
	PrivacyPolicy     string    `json:"privacyPolicy"`
	RefundAndReturns  string    `json:"refundAndReturns"`
	TermsAndConditions string   `json:"termsAndConditions"`
	SSL               bool      `json:"ssl"`
	Status            bool      `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type SettingsPatch struct {
	Name              *string `json:"name"`
	Description       *string `json:"description"`
	BusinessNumber    *string `json:"businessNumber"`
	BusinessAddress   *string `json:"businessAddress"`
	BusinessLocation  *string `json:"businessLocation"`
	BusinessSlogan    *string `json:"businessSlogan"`
	BusinessEmail     *string `json:"businessEmail"`
	BusinessFacebook  *string `json:"businessFacebook"`
	BusinessInstagram *string `json:"businessInstagram"`
	BusinessTwitter   *string `json:"businessTwitter"`
	BusinessLinkedin  *string `json:"businessLinkedin"`
	BusinessYoutube   *string `json:"businessYoutube"`
	BusinessWhatsapp  *string `json:"businessWhatsapp"`
	BusinessWorkHours *string `json:"businessWorkHours"`
	PrimaryColor      *string `json:"primaryColor"`
	SecondaryColor    *string `json:"secondaryColor"`
	Logo              *string `json:"logo"`
	Favicon           *string `json:"favicon"`
	AboutBanner       *string `json:"aboutBanner"`
	ServiceBanner     *string `json:"serviceBanner"`
	WorkBanner        *string `json:"workBanner"`
	ProcessBanner     *string `json:"processBanner"`
	GalleryBanner     *string `json:"galleryBanner"`
	ShopBanner        *string `json:"shopBanner"`
	ContactBanner     *string `json:"contactBanner"`
	BlogBanner        *string `json:"blogBanner"`
	Currency          *string `json:"currency"`
	Delivery          *string `json:"delivery"`
	PaymentTerms      *string `json:"paymentTerms"`
	PickupPoint       *string `json:"pickupPoint"`
	PrivacyPolicy     *string `json:"privacyPolicy"`
	RefundAndReturns  *string `json:"refundAndReturns"`
	TermsAndConditions *string `json:"termsAndConditions"`
	SSL               *bool   `json:"ssl"`
	Status            *bool   `json:"status"`
}
