// =============================================================================
// Export Document Generator - Shipment Record Model
// =============================================================================
//
// This package defines the shipment record: the single, fully-populated input
// from which every compliance document is derived. Records arrive as YAML
// from the surrounding application; numeric fields that permit the "-"
// sentinel are declared as strings here and coerced to typed values by the
// normalizer (normalize.go).
//
// The record is immutable input. The pipeline never writes back into it.
//
// =============================================================================

package shipment

// Record is the root shipment entity supplied by the caller.
type Record struct {
	Exporter   Exporter     `yaml:"exporter"`
	Buyer      Buyer        `yaml:"buyer"`
	Shipping   Shipping     `yaml:"shipping"`
	Categories []Category   `yaml:"product_categories"`
	Package    PackageInfo  `yaml:"package_info"`
	Annexure   AnnexureInfo `yaml:"annexure_info"`
	Vgm        VgmInfo      `yaml:"vgm_info"`
	Containers []Container  `yaml:"containers"`
	Suppliers  []Supplier   `yaml:"suppliers"`
}

// Exporter identifies the exporting party.
type Exporter struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	Email   string `yaml:"email"`
	GSTIN   string `yaml:"gstin"`
	IEC     string `yaml:"iec"`
	State   string `yaml:"state"`
}

// Buyer holds order and consignee details.
type Buyer struct {
	OrderNumber string `yaml:"order_number"`
	OrderDate   string `yaml:"order_date"`
	PONumber    string `yaml:"po_number"`
	Consignee   string `yaml:"consignee"`
	NotifyParty string `yaml:"notify_party"`
}

// Shipping holds route and commercial-term fields.
type Shipping struct {
	InvoiceNumber      string `yaml:"invoice_number"`
	InvoiceDate        string `yaml:"invoice_date"`
	PreCarriageBy      string `yaml:"pre_carriage_by"`
	PlaceOfReceipt     string `yaml:"place_of_receipt"`
	VesselFlightNo     string `yaml:"vessel_flight_no"`
	PortOfLoading      string `yaml:"port_of_loading"`
	PortOfDischarge    string `yaml:"port_of_discharge"`
	FinalDestination   string `yaml:"final_destination"`
	CountryOfOrigin    string `yaml:"country_of_origin"`
	CountryOfDelivery  string `yaml:"country_of_delivery"`
	// PaymentTerm carries the incoterm-related free text. The literal value
	// "CIF -> FOB" selects the CIF-to-FOB conversion flow.
	PaymentTerm      string `yaml:"payment_term"`
	DeliveryTerm     string `yaml:"delivery_term"`
	ProductType      string `yaml:"product_type"`
	IntegratedTax    string `yaml:"integrated_tax"`
	ContainerSummary string `yaml:"container_summary"`
}

// Category groups product lines under one HSN classification. A category and
// its product lines are distinct types; nothing downstream discriminates rows
// by field count.
type Category struct {
	Name     string        `yaml:"name"`
	HSNCode  string        `yaml:"hsn_code"`
	Products []ProductLine `yaml:"products"`
}

// ProductLine is one billable line as captured upstream. Sentinel-able fields
// ("-" means absent) are strings until normalization.
type ProductLine struct {
	Name        string `yaml:"name"`
	Size        string `yaml:"size"`
	Quantity    string `yaml:"quantity"`
	Unit        string `yaml:"unit"`
	AreaPerUnit string `yaml:"area_per_unit"`
	TotalArea   string `yaml:"total_area"`
	UnitPrice   string `yaml:"unit_price"`
	LineTotal   string `yaml:"line_total"`
	NetWeight   string `yaml:"net_weight"`
	GrossWeight string `yaml:"gross_weight"`
}

// PackageInfo holds package-level declared aggregates. Declared aggregates
// are authoritative; lines may disagree due to upstream rounding and are
// never used to re-derive these figures.
type PackageInfo struct {
	// Packages is a count+unit composite, e.g. "1200 BOX".
	Packages string `yaml:"packages"`

	TotalArea   string `yaml:"total_area"`
	NetWeight   string `yaml:"net_weight"`
	GrossWeight string `yaml:"gross_weight"`

	// Amount is the declared monetary aggregate. Under CIF -> FOB terms this
	// is the CIF-equivalent figure; otherwise it is the displayed total.
	Amount    string `yaml:"amount"`
	Insurance string `yaml:"insurance"`
	Freight   string `yaml:"freight"`

	GSTInvoiceNumber string `yaml:"gst_invoice_number"`
	GSTInvoiceDate   string `yaml:"gst_invoice_date"`
	LUTNumber        string `yaml:"lut_number"`
	LUTDate          string `yaml:"lut_date"`
	ARN              string `yaml:"arn"`
}

// AnnexureInfo holds fields for the regulatory annexure form.
type AnnexureInfo struct {
	RangeOffice        string `yaml:"range_office"`
	Division           string `yaml:"division"`
	Commissionerate    string `yaml:"commissionerate"`
	ExaminationDate    string `yaml:"examination_date"`
	OfficerName        string `yaml:"officer_name"`
	OfficerDesignation string `yaml:"officer_designation"`
	SupervisionName    string `yaml:"supervision_name"`
	SupervisionRole    string `yaml:"supervision_role"`
	SampleDrawn        string `yaml:"sample_drawn"`
	SealType           string `yaml:"seal_type"`
}

// VgmInfo holds fields for the container-weight verification sheet.
type VgmInfo struct {
	ShipperName         string `yaml:"shipper_name"`
	ShipperRegistration string `yaml:"shipper_registration"`
	OfficialName        string `yaml:"official_name"`
	OfficialDesignation string `yaml:"official_designation"`
	OfficialContact     string `yaml:"official_contact"`
	WeighbridgeName     string `yaml:"weighbridge_name"`
	WeighbridgeSlipNo   string `yaml:"weighbridge_slip_no"`
	WeighingDate        string `yaml:"weighing_date"`
	// Containers is the weighbridge companion to Record.Containers: same
	// length, same order, joined by position (there is no shared key).
	Containers []TareEntry `yaml:"containers"`
}

// TareEntry is one weighbridge verification record.
type TareEntry struct {
	BookingNumber string `yaml:"booking_number"`
	TareWeight    string `yaml:"tare_weight"`
}

// Container is one physical container on the shipment.
type Container struct {
	ContainerNumber string `yaml:"container_number"`
	LineSeal        string `yaml:"line_seal"`
	CustomSeal      string `yaml:"custom_seal"`
	Description     string `yaml:"description"`
	BoxQuantity     string `yaml:"box_quantity"`
	NetWeight       string `yaml:"net_weight"`
	GrossWeight     string `yaml:"gross_weight"`
}

// Supplier is one upstream supplier, used only for shipments invoiced
// without integrated tax.
type Supplier struct {
	Name          string `yaml:"name"`
	GSTIN         string `yaml:"gstin"`
	InvoiceNumber string `yaml:"invoice_number"`
	Date          string `yaml:"date"`
}
