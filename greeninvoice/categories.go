package greeninvoice

// PaymentTerms is the number of days after end of month a client pays within
type PaymentTerms int

const (
	PaymentTermsImmediate     PaymentTerms = -1
	PaymentTermsEndOfMonth    PaymentTerms = 0
	PaymentTermsEndOfMonth10  PaymentTerms = 10
	PaymentTermsEndOfMonth15  PaymentTerms = 15
	PaymentTermsEndOfMonth30  PaymentTerms = 30
	PaymentTermsEndOfMonth45  PaymentTerms = 45
	PaymentTermsEndOfMonth60  PaymentTerms = 60
	PaymentTermsEndOfMonth75  PaymentTerms = 75
	PaymentTermsEndOfMonth90  PaymentTerms = 90
	PaymentTermsEndOfMonth120 PaymentTerms = 120
)

// Category is a business category
type Category int

const (
	CategoryOther                      Category = 0
	CategoryInternetAndComputers       Category = 1
	CategoryAccounting                 Category = 2
	CategoryEngineering                Category = 3
	CategoryMarketing                  Category = 4
	CategoryLeisureAndSports           Category = 5
	CategoryHealthAndMind              Category = 6
	CategoryAgriculture                Category = 7
	CategoryArt                        Category = 8
	CategoryEducation                  Category = 9
	CategoryCommunicationAndJournalism Category = 10
	CategoryReligion                   Category = 11
	CategoryLaw                        Category = 12
	CategoryArchitectureAndDesign      Category = 13
	CategoryFinance                    Category = 14
	CategoryTelevisionAndStage         Category = 15
	CategoryCoachingAndConsulting      Category = 16
	CategoryHostingAndCatering         Category = 17
	CategoryDelivery                   Category = 18
	CategoryRealEstate                 Category = 19
	CategoryAdministrationAndLogistics Category = 21
)

// SubCategory refines a Category. The hundreds digit(s) match the parent category.
type SubCategory int

const (
	SubCategoryOther SubCategory = 0

	SubCategoryWebSoftware          SubCategory = 101
	SubCategorySoftwareDevelopment  SubCategory = 102
	SubCategoryDigitalMarketing     SubCategory = 103
	SubCategoryHardware             SubCategory = 104
	SubCategoryComputerTechnician   SubCategory = 105
	SubCategoryTechnologyConsultant SubCategory = 106

	SubCategoryCPA         SubCategory = 201
	SubCategoryBookkeeping SubCategory = 202
	SubCategoryTaxAdvisor  SubCategory = 203

	SubCategoryEngineeringAndConstruction SubCategory = 301
	SubCategoryFoodEngineering            SubCategory = 302
	SubCategoryElectronicEngineering      SubCategory = 303
	SubCategoryMechanicalEngineering      SubCategory = 304
	SubCategoryCivilEngineering           SubCategory = 305

	SubCategoryPhoto                 SubCategory = 401
	SubCategoryMarketingWriting      SubCategory = 402
	SubCategoryMarketingConsulting   SubCategory = 403
	SubCategoryPrintingProduction    SubCategory = 404
	SubCategoryAdvertisingConsulting SubCategory = 405
	SubCategoryGraphicDesign         SubCategory = 406
	SubCategorySalesAndMarketing     SubCategory = 407
	SubCategoryIllustrator           SubCategory = 408

	SubCategoryFitnessTraining SubCategory = 501
	SubCategoryCircles         SubCategory = 502
	SubCategoryPilatesAndYoga  SubCategory = 503

	SubCategoryDoctor               SubCategory = 601
	SubCategoryAlternativeTreatment SubCategory = 602
	SubCategoryMassage              SubCategory = 603
	SubCategoryMentalCounseling     SubCategory = 604
	SubCategoryPsychologist         SubCategory = 605

	SubCategoryAgronomist   SubCategory = 701
	SubCategoryGardener     SubCategory = 702
	SubCategoryAgricultural SubCategory = 703

	SubCategoryLiteraturePoetryAndPlays SubCategory = 801
	SubCategoryDraw                     SubCategory = 802
	SubCategoryStreetTheater            SubCategory = 803
	SubCategoryMagician                 SubCategory = 804
	SubCategoryClown                    SubCategory = 805

	SubCategoryTutor        SubCategory = 901
	SubCategoryLecturer     SubCategory = 902
	SubCategoryKindergarten SubCategory = 903
	SubCategoryMeeting      SubCategory = 904

	SubCategoryReporter     SubCategory = 1001
	SubCategoryPhotographer SubCategory = 1002

	SubCategorySAP               SubCategory = 1101
	SubCategoryMulti             SubCategory = 1102
	SubCategoryKashrutSupervisor SubCategory = 1103

	SubCategoryLawyer SubCategory = 1201

	SubCategoryArchitecture   SubCategory = 1301
	SubCategoryExteriorDesign SubCategory = 1302

	SubCategoryEconomist           SubCategory = 1401
	SubCategoryBanker              SubCategory = 1402
	SubCategoryFinancialCounseling SubCategory = 1403

	SubCategoryProductions SubCategory = 1501
	SubCategoryMusician    SubCategory = 1502
	SubCategorySinger      SubCategory = 1503
	SubCategorySound       SubCategory = 1504
	SubCategoryPlayer      SubCategory = 1505
	SubCategoryScripter    SubCategory = 1506
	SubCategoryTVAndCinema SubCategory = 1507

	SubCategoryCoach              SubCategory = 1601
	SubCategoryBusinessConsultant SubCategory = 1602
	SubCategoryPersonalConsultant SubCategory = 1603
	SubCategoryFamilyTherapist    SubCategory = 1604
	SubCategoryCouplesTherapist   SubCategory = 1605

	SubCategoryCatering     SubCategory = 1701
	SubCategoryEventPlanner SubCategory = 1702

	SubCategoryInternationalTrade SubCategory = 1801
	SubCategoryCustomsClearance   SubCategory = 1802
	SubCategoryShipping           SubCategory = 1803

	SubCategoryMediation            SubCategory = 1901
	SubCategoryRealEstateConsulting SubCategory = 1902
	SubCategoryAppraisals           SubCategory = 1903

	SubCategoryAirConditioning     SubCategory = 2001
	SubCategoryPlumber             SubCategory = 2002
	SubCategoryElectrician         SubCategory = 2003
	SubCategoryRenovator           SubCategory = 2004
	SubCategoryCarpentry           SubCategory = 2005
	SubCategoryContractor          SubCategory = 2006
	SubCategoryHoldingsAndServices SubCategory = 2007

	SubCategoryOfficeServices SubCategory = 2101
	SubCategoryDelivery       SubCategory = 2102
)

// Category returns the parent category encoded in the sub-category value.
// Sub-categories 2001-2007 map to 20, which has no named Category.
func (sc SubCategory) Category() Category {
	return Category(int(sc) / 100)
}
