package services

import (
	"reflect"
	"testing"
)

func TestBuildScopeOfWork_SolarDefaults(t *testing.T) {
	got := BuildScopeOfWork(ProjectConfiguration{ProjectType: ProjectTypeOnGrid})

	wantCompany := []string{
		"Supply of all materials listed in the bill of materials",
		"Installation, testing and commissioning of the solar power plant",
		"Transportation of materials to the site",
		"Civil work including foundation and structure grouting",
		"Net meter application, liaisoning and EB approval works",
		"Electrical wiring from inverter to distribution board",
	}
	wantCustomer := []string{
		"Provision of shadow-free roof space for the solar array",
		"Power and water supply during installation",
	}

	if !reflect.DeepEqual(got.CompanyScope, wantCompany) {
		t.Errorf("CompanyScope = %v, want %v", got.CompanyScope, wantCompany)
	}
	if !reflect.DeepEqual(got.CustomerScope, wantCustomer) {
		t.Errorf("CustomerScope = %v, want %v", got.CustomerScope, wantCustomer)
	}
}

func TestBuildScopeOfWork_CustomerAssignments(t *testing.T) {
	got := BuildScopeOfWork(ProjectConfiguration{
		ProjectType:     ProjectTypeOnGrid,
		CivilScope:      CustomerScope,
		NetMeterScope:   CustomerScope,
		ElectricalScope: CustomerScope,
	})

	if len(got.CompanyScope) != 3 {
		t.Errorf("CompanyScope = %v, want only the three fixed bullets", got.CompanyScope)
	}
	wantCustomer := []string{
		"Civil work including foundation and structure grouting",
		"Net meter application, liaisoning and EB approval works",
		"Electrical wiring from inverter to distribution board",
		"Provision of shadow-free roof space for the solar array",
		"Power and water supply during installation",
	}
	if !reflect.DeepEqual(got.CustomerScope, wantCustomer) {
		t.Errorf("CustomerScope = %v, want %v", got.CustomerScope, wantCustomer)
	}
}

func TestBuildScopeOfWork_OffGridSkipsNetMeter(t *testing.T) {
	got := BuildScopeOfWork(ProjectConfiguration{ProjectType: ProjectTypeOffGrid})
	for _, item := range append(got.CompanyScope, got.CustomerScope...) {
		if item == "Net meter application, liaisoning and EB approval works" {
			t.Fatal("off-grid scope carries a net meter item")
		}
	}
}

func TestBuildScopeOfWork_WaterHeater(t *testing.T) {
	got := BuildScopeOfWork(ProjectConfiguration{ProjectType: ProjectTypeWaterHeater})

	wantCompany := []string{
		"Supply of the equipment and standard accessories",
		"Installation, testing and commissioning at the site",
		"Civil work including foundation and structure grouting",
		"Electrical wiring up to the utilization point",
		"Plumbing and pipeline work up to the utilization point",
	}
	wantCustomer := []string{"Power and water supply during installation"}

	if !reflect.DeepEqual(got.CompanyScope, wantCompany) {
		t.Errorf("CompanyScope = %v, want %v", got.CompanyScope, wantCompany)
	}
	if !reflect.DeepEqual(got.CustomerScope, wantCustomer) {
		t.Errorf("CustomerScope = %v, want %v", got.CustomerScope, wantCustomer)
	}
}

func TestBuildScopeOfWork_PlumbingToCustomer(t *testing.T) {
	got := BuildScopeOfWork(ProjectConfiguration{
		ProjectType:   ProjectTypeWaterHeater,
		PlumbingScope: CustomerScope,
	})
	want := []string{
		"Plumbing and pipeline work up to the utilization point",
		"Power and water supply during installation",
	}
	if !reflect.DeepEqual(got.CustomerScope, want) {
		t.Errorf("CustomerScope = %v, want %v", got.CustomerScope, want)
	}
}

func TestWarrantyTerms(t *testing.T) {
	tests := []struct {
		project   ProjectType
		lineCount int
		first     string
	}{
		{ProjectTypeOnGrid, 4, "25 years performance warranty on solar PV modules"},
		{ProjectTypeOffGrid, 4, "25 years performance warranty on solar PV modules"},
		{ProjectTypeHybrid, 4, "25 years performance warranty on solar PV modules"},
		{ProjectTypeWaterHeater, 3, "5 years warranty on the solar water heater tank"},
		{ProjectTypeWaterPump, 3, "2 years warranty on the pump and controller"},
	}

	for _, tt := range tests {
		t.Run(string(tt.project), func(t *testing.T) {
			got := WarrantyTerms(tt.project)
			if len(got) != tt.lineCount {
				t.Fatalf("WarrantyTerms(%q) has %d lines, want %d", tt.project, len(got), tt.lineCount)
			}
			if got[0] != tt.first {
				t.Errorf("first line = %q, want %q", got[0], tt.first)
			}
		})
	}

	if got := WarrantyTerms(ProjectType("windmill")); got != nil {
		t.Errorf("WarrantyTerms(unknown) = %v, want nil", got)
	}
}

func TestWarrantyTerms_BatteryProRata(t *testing.T) {
	for _, p := range []ProjectType{ProjectTypeOffGrid, ProjectTypeHybrid} {
		found := false
		for _, line := range WarrantyTerms(p) {
			if line == "5 years pro-rata warranty on batteries" {
				found = true
			}
		}
		if !found {
			t.Errorf("WarrantyTerms(%q) missing the battery pro-rata line", p)
		}
	}
}
